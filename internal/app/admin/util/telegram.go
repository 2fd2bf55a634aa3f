package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TelegramClient - минимальный клиент Telegram Bot API для отправки
// анонсов товаров в чаты магазина
type TelegramClient struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewTelegramClient создает клиент бота. baseURL задается отдельно,
// чтобы в тестах подменять Bot API на httptest-сервер.
func NewTelegramClient(token, baseURL string) *TelegramClient {
	return &TelegramClient{
		token:   token,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// InlineButton - кнопка со ссылкой под сообщением
type InlineButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type inlineKeyboard struct {
	InlineKeyboard [][]InlineButton `json:"inline_keyboard"`
}

type sendMessageRequest struct {
	ChatID      int64           `json:"chat_id"`
	Text        string          `json:"text"`
	ParseMode   string          `json:"parse_mode,omitempty"`
	ReplyMarkup *inlineKeyboard `json:"reply_markup,omitempty"`
}

type sendPhotoRequest struct {
	ChatID      int64           `json:"chat_id"`
	Photo       string          `json:"photo"`
	Caption     string          `json:"caption,omitempty"`
	ParseMode   string          `json:"parse_mode,omitempty"`
	ReplyMarkup *inlineKeyboard `json:"reply_markup,omitempty"`
}

// mediaItem - элемент альбома для sendMediaGroup
type mediaItem struct {
	Type      string `json:"type"`
	Media     string `json:"media"`
	Caption   string `json:"caption,omitempty"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type sendMediaGroupRequest struct {
	ChatID int64       `json:"chat_id"`
	Media  []mediaItem `json:"media"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage отправляет текстовое сообщение, опционально с кнопкой-ссылкой
func (c *TelegramClient) SendMessage(ctx context.Context, chatID int64, text string, button *InlineButton) error {
	req := sendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: keyboard(button),
	}
	return c.call(ctx, "sendMessage", req)
}

// SendPhoto отправляет одну картинку с подписью и кнопкой-ссылкой
func (c *TelegramClient) SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, button *InlineButton) error {
	req := sendPhotoRequest{
		ChatID:      chatID,
		Photo:       photoURL,
		Caption:     caption,
		ParseMode:   "HTML",
		ReplyMarkup: keyboard(button),
	}
	return c.call(ctx, "sendPhoto", req)
}

// SendMediaGroup отправляет альбом картинок, подпись вешается на первую.
// Telegram принимает от 2 до 10 элементов, лишние обрезаем.
func (c *TelegramClient) SendMediaGroup(ctx context.Context, chatID int64, photoURLs []string, caption string) error {
	if len(photoURLs) > 10 {
		photoURLs = photoURLs[:10]
	}

	media := make([]mediaItem, 0, len(photoURLs))
	for i, url := range photoURLs {
		item := mediaItem{Type: "photo", Media: url}
		if i == 0 {
			item.Caption = caption
			item.ParseMode = "HTML"
		}
		media = append(media, item)
	}

	req := sendMediaGroupRequest{ChatID: chatID, Media: media}
	return c.call(ctx, "sendMediaGroup", req)
}

func (c *TelegramClient) call(ctx context.Context, method string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build telegram request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return fmt.Errorf("failed to read telegram response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return fmt.Errorf("unexpected telegram response: %s", data)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram api error: %s", apiResp.Description)
	}
	return nil
}

func keyboard(button *InlineButton) *inlineKeyboard {
	if button == nil {
		return nil
	}
	return &inlineKeyboard{InlineKeyboard: [][]InlineButton{{*button}}}
}
