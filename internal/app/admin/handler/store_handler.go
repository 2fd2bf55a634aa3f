package handler

import (
	"mime/multipart"
	"net/http"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/service"
	"mebelstore/internal/app/admin/util"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	uploader
	storeService service.StoreServiceInterface
}

func NewStoreHandler(storeService service.StoreServiceInterface, images util.ImageStore, maxFiles int) *StoreHandler {
	return &StoreHandler{
		uploader:     uploader{images: images, maxFiles: maxFiles},
		storeService: storeService,
	}
}

// === STORE INFO ===

// CreateStore принимает multipart форму с полями name, description
// и необязательным файлом logo
func (h *StoreHandler) CreateStore(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := &entity.CreateStoreRequest{
		Name:        formValue(form, "name"),
		Description: formValue(form, "description"),
	}
	if err := validate.Struct(req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	logo, err := h.saveLogo(form)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	req.Logo = logo

	store, err := h.storeService.CreateStore(c.Request.Context(), req)
	if err != nil {
		if logo != nil {
			h.discardUploads([]entity.UploadedImage{*logo})
		}
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, store)
}

func (h *StoreHandler) GetStore(c *gin.Context) {
	store, err := h.storeService.GetStore(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, store)
}

func (h *StoreHandler) UpdateStore(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := &entity.UpdateStoreRequest{
		Name:        formValue(form, "name"),
		Description: formValue(form, "description"),
	}

	logo, err := h.saveLogo(form)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	req.Logo = logo

	store, err := h.storeService.UpdateStore(c.Request.Context(), req)
	if err != nil {
		if logo != nil {
			h.discardUploads([]entity.UploadedImage{*logo})
		}
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, store)
}

// === ADDRESSES ===

func (h *StoreHandler) CreateAddress(c *gin.Context) {
	var req entity.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	address, err := h.storeService.CreateAddress(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, address)
}

func (h *StoreHandler) ListAddresses(c *gin.Context) {
	addresses, err := h.storeService.ListAddresses(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, addresses, int64(len(addresses)), 0, 0)
}

func (h *StoreHandler) UpdateAddress(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req entity.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	address, err := h.storeService.UpdateAddress(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, address)
}

func (h *StoreHandler) DeleteAddress(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.storeService.DeleteAddress(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "address deleted")
}

// === PHONES ===

func (h *StoreHandler) CreatePhone(c *gin.Context) {
	var req entity.CreatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	phone, err := h.storeService.CreatePhone(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, phone)
}

func (h *StoreHandler) GetPhone(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	phone, err := h.storeService.GetPhone(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, phone)
}

func (h *StoreHandler) ListPhones(c *gin.Context) {
	phones, err := h.storeService.ListPhones(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, phones, int64(len(phones)), 0, 0)
}

func (h *StoreHandler) UpdatePhone(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req entity.UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	phone, err := h.storeService.UpdatePhone(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, phone)
}

func (h *StoreHandler) DeletePhone(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.storeService.DeletePhone(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "phone deleted")
}

// === EMAILS ===

func (h *StoreHandler) CreateEmail(c *gin.Context) {
	var req entity.CreateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	email, err := h.storeService.CreateEmail(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, email)
}

func (h *StoreHandler) GetEmail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	email, err := h.storeService.GetEmail(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, email)
}

func (h *StoreHandler) ListEmails(c *gin.Context) {
	emails, err := h.storeService.ListEmails(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, emails, int64(len(emails)), 0, 0)
}

func (h *StoreHandler) UpdateEmail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req entity.UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	email, err := h.storeService.UpdateEmail(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, email)
}

func (h *StoreHandler) DeleteEmail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.storeService.DeleteEmail(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "email deleted")
}

// === IMAGES ===

// AddImages загружает картинки магазина
func (h *StoreHandler) AddImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	uploads, err := h.saveUploads(form.File["images"], "store")
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	images, err := h.storeService.AddImages(c.Request.Context(), uploads)
	if err != nil {
		h.discardUploads(uploads)
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, images)
}

// DeleteImage удаляет картинку магазина. Файл стирается с диска
// только после успешного удаления строки из БД.
func (h *StoreHandler) DeleteImage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	filename, err := h.storeService.DeleteImage(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.discardUploads([]entity.UploadedImage{{Filename: filename}})
	respondMessage(c, http.StatusOK, "image deleted")
}

// saveLogo сохраняет необязательный файл logo из формы
func (h *StoreHandler) saveLogo(form *multipart.Form) (*entity.UploadedImage, error) {
	files := form.File["logo"]
	if len(files) == 0 {
		return nil, nil
	}

	uploads, err := h.saveUploads(files[:1], "store")
	if err != nil {
		return nil, err
	}
	return &uploads[0], nil
}
