package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// PhotoSize размер фото
type PhotoSize struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FileSize     *int   `json:"file_size,omitempty"`
}

// SendPhotoResult результат отправки фото
type SendPhotoResult struct {
	MessageID int64       `json:"message_id"`
	Photo     []PhotoSize `json:"photo"`
	Date      int64       `json:"date"`
}

// SendPhotoResponse ответ от Telegram API на sendPhoto
type SendPhotoResponse struct {
	APIResponse
	Result SendPhotoResult `json:"result"`
}

// SendPhoto отправляет фото с подписью и опциональной inline клавиатурой.
// Фото уходит как multipart, caption и reply_markup — полями формы
func (c *Client) SendPhoto(ctx context.Context, chatID int64, photo []byte, filename, caption string, keyboard map[string]interface{}) error {
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	if err := writer.WriteField("chat_id", fmt.Sprintf("%d", chatID)); err != nil {
		c.log.Error("failed to write chat_id field",
			"error", err,
			"chat_id", chatID)
		return fmt.Errorf("failed to write chat_id: %w", err)
	}

	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			c.log.Error("failed to write caption field",
				"error", err,
				"chat_id", chatID)
			return fmt.Errorf("failed to write caption: %w", err)
		}
	}

	if keyboard != nil {
		markup, err := json.Marshal(keyboard)
		if err != nil {
			c.log.Error("failed to marshal reply_markup",
				"error", err,
				"chat_id", chatID)
			return fmt.Errorf("failed to marshal reply_markup: %w", err)
		}
		if err := writer.WriteField("reply_markup", string(markup)); err != nil {
			c.log.Error("failed to write reply_markup field",
				"error", err,
				"chat_id", chatID)
			return fmt.Errorf("failed to write reply_markup: %w", err)
		}
	}

	photoPart, err := writer.CreateFormFile("photo", filename)
	if err != nil {
		c.log.Error("failed to create photo form file",
			"error", err,
			"filename", filename)
		return fmt.Errorf("failed to create photo form file: %w", err)
	}

	if _, err := photoPart.Write(photo); err != nil {
		c.log.Error("failed to write photo data",
			"error", err,
			"filename", filename)
		return fmt.Errorf("failed to write photo data: %w", err)
	}

	if err := writer.Close(); err != nil {
		c.log.Error("failed to close multipart writer",
			"error", err)
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	url := c.baseURL + "/sendPhoto"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &requestBody)
	if err != nil {
		c.log.Error("failed to create sendPhoto request",
			"error", err,
			"chat_id", chatID)
		return fmt.Errorf("telegram create request failed [chat_id=%d]: %w", chatID, err)
	}

	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	c.log.Debug("sending photo to Telegram",
		"chat_id", chatID,
		"filename", filename,
		"photo_size", len(photo))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("telegram sendPhoto request failed",
			"error", err,
			"chat_id", chatID,
			"filename", filename)
		return fmt.Errorf("telegram request failed [chat_id=%d]: %w", chatID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("failed to read sendPhoto response body",
			"error", err,
			"chat_id", chatID,
			"status_code", resp.StatusCode)
		return fmt.Errorf("telegram read response failed [chat_id=%d, status=%d]: %w",
			chatID, resp.StatusCode, err)
	}

	var apiResp SendPhotoResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.log.Error("failed to unmarshal sendPhoto response",
			"error", err,
			"chat_id", chatID,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("telegram unmarshal failed [chat_id=%d, status=%d]: %w",
			chatID, resp.StatusCode, err)
	}

	if !apiResp.OK {
		c.log.Error("telegram API error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"chat_id", chatID,
			"status_code", resp.StatusCode,
		)
		return fmt.Errorf("telegram API error [code=%d, chat_id=%d]: %s",
			apiResp.ErrorCode, chatID, apiResp.Description)
	}

	c.log.Debug("photo sent successfully",
		"chat_id", chatID,
		"message_id", apiResp.Result.MessageID,
		"filename", filename)

	return nil
}
