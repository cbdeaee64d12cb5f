package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// OrderNotification contains order data for Telegram notification.
type OrderNotification struct {
	OrderNumber  string
	CustomerName string
	Items        []OrderItemNotification
	Subtotal     float64
	ShippingCost float64
	Total        float64
	FreeShipping bool
}

// OrderItemNotification contains order item data.
type OrderItemNotification struct {
	Name     string
	Quantity int
	Price    float64
}

// FormatPrice formats an EUR amount for notification messages.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("€%.2f", amount)
}

// NotifyNewOrder sends notification about new order to admin chat.
func (s *TelegramService) NotifyNewOrder(order OrderNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	var itemsList strings.Builder
	for i, item := range order.Items {
		itemTotal := item.Price * float64(item.Quantity)
		itemsList.WriteString(fmt.Sprintf("%d. <b>%s</b>\n   %d x %s = %s\n",
			i+1,
			item.Name,
			item.Quantity,
			FormatPrice(item.Price),
			FormatPrice(itemTotal),
		))
	}

	shippingText := FormatPrice(order.ShippingCost)
	if order.FreeShipping {
		shippingText = "Free"
	}

	message := fmt.Sprintf(`<b>🛒 NEW ORDER!</b>
<b>📋 Order:</b> %s
<b>👤 Customer:</b> %s
<b>📦 Items:</b>
%s
<b>Subtotal:</b> %s
<b>🚚 Shipping:</b> %s
<b>💰 Total:</b> %s
━━━━━━━━━━━━━━━━━━
<i>Jungle Yourself</i>`,
		order.OrderNumber,
		order.CustomerName,
		itemsList.String(),
		FormatPrice(order.Subtotal),
		shippingText,
		FormatPrice(order.Total),
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
