package services

import (
	"fmt"
	"log"
	"strings"

	"bakery_shop/internal/models"
	"bakery_shop/pkg/mailer"
)

type NotificationService interface {
	OrderCreated(order *models.Order)
}

type notificationService struct {
	mailer      *mailer.Client
	bakeryEmail string
}

func NewNotificationService(mailerClient *mailer.Client, bakeryEmail string) NotificationService {
	return &notificationService{mailer: mailerClient, bakeryEmail: bakeryEmail}
}

// OrderCreated emails the bakery about a new order. Notification is best
// effort: a send failure is logged and never fails the order itself.
func (s *notificationService) OrderCreated(order *models.Order) {
	if s.mailer == nil || s.bakeryEmail == "" {
		log.Println("SMTP is not configured, order notification skipped")
		return
	}

	subject := fmt.Sprintf("Новый заказ #%d - Сладкий рай", order.ID)
	if err := s.mailer.Send(s.bakeryEmail, subject, orderEmailHTML(order)); err != nil {
		log.Printf("Failed to send order notification: %v", err)
		return
	}
	log.Printf("Order notification sent to %s", s.bakeryEmail)
}

func orderEmailHTML(order *models.Order) string {
	deliveryInfo := "Самовывоз из пекарни"
	if order.DeliveryMethod == "delivery" {
		deliveryInfo = fmt.Sprintf("Доставка по адресу: %s", order.DeliveryAddress)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<h1>🥐 Новый заказ #%d</h1>", order.ID)
	b.WriteString("<h2>Данные клиента</h2>")
	fmt.Fprintf(&b, "<p><strong>Имя:</strong> %s</p>", order.CustomerName)
	fmt.Fprintf(&b, "<p><strong>Телефон:</strong> %s</p>", order.CustomerPhone)
	if order.CustomerEmail != "" {
		fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", order.CustomerEmail)
	}
	b.WriteString("<h2>Способ получения</h2>")
	fmt.Fprintf(&b, "<p>%s</p>", deliveryInfo)
	if order.Comments != "" {
		b.WriteString("<h2>Комментарий</h2>")
		fmt.Fprintf(&b, "<p>%s</p>", order.Comments)
	}

	b.WriteString("<h2>Состав заказа</h2>")
	b.WriteString("<table><thead><tr><th>Товар</th><th>Кол-во</th><th>Цена</th><th>Сумма</th></tr></thead><tbody>")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%d ₽</td><td>%d ₽</td></tr>",
			item.ProductName, item.Quantity, item.ProductPrice, item.Subtotal)
	}
	b.WriteString("</tbody></table>")
	fmt.Fprintf(&b, "<h3>Итого: %d ₽</h3>", order.TotalAmount)
	fmt.Fprintf(&b, "<p>Заказ создан %s</p>", order.CreatedAt.Format("02.01.2006 в 15:04"))

	return b.String()
}
