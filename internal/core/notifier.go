package core

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/models"
	"github.com/starterkart/starterkart-backend/pkg/messagequeue"
)

// MailSender is satisfied by *mailer.Mailer.
type MailSender interface {
	Send(to []string, subject, body string) error
}

const defaultNotifyTimeout = 15 * time.Second

var _ Notifier = (*InquiryNotifier)(nil)

// InquiryNotifier forwards new inquiries by mail and to a message queue.
// Deliveries run in the background. Failures are logged and dropped.
type InquiryNotifier struct {
	logger     *zap.Logger
	timeout    time.Duration
	mailer     MailSender
	recipients []string
	publisher  messagequeue.Publisher
	wg         sync.WaitGroup
}

// NewInquiryNotifier creates a notifier with no delivery channels.
func NewInquiryNotifier(logger *zap.Logger) *InquiryNotifier {
	return &InquiryNotifier{logger: logger, timeout: defaultNotifyTimeout}
}

// WithMail adds mail delivery to the given recipients.
func (n *InquiryNotifier) WithMail(m MailSender, recipients ...string) *InquiryNotifier {
	n.mailer = m
	n.recipients = recipients
	return n
}

// WithQueue adds delivery to a message queue. The notifier owns p and closes it in Close.
func (n *InquiryNotifier) WithQueue(p messagequeue.Publisher) *InquiryNotifier {
	n.publisher = p
	return n
}

// Enabled reports whether at least one delivery channel is configured.
func (n *InquiryNotifier) Enabled() bool {
	return n.mailer != nil || n.publisher != nil
}

// Notify starts delivering the inquiry on every configured channel and returns immediately.
func (n *InquiryNotifier) Notify(inquiry models.Inquiry) {
	if n.mailer != nil {
		n.wg.Add(1)
		go func() {
			defer n.wg.Done()
			n.sendMail(inquiry)
		}()
	}
	if n.publisher != nil {
		n.wg.Add(1)
		go func() {
			defer n.wg.Done()
			n.publish(inquiry)
		}()
	}
}

// Wait blocks until all in-flight deliveries have finished.
func (n *InquiryNotifier) Wait() {
	n.wg.Wait()
}

// Close waits for in-flight deliveries and releases the queue publisher.
func (n *InquiryNotifier) Close() error {
	n.wg.Wait()
	if n.publisher == nil {
		return nil
	}
	return n.publisher.Close()
}

func (n *InquiryNotifier) sendMail(inquiry models.Inquiry) {
	subject, body := inquiryMail(inquiry)
	if err := n.mailer.Send(n.recipients, subject, body); err != nil {
		n.logger.Error("Failed to mail inquiry", zap.String("inquiry_id", inquiry.ID), zap.Error(err))
		return
	}
	n.logger.Info("Inquiry mailed", zap.String("inquiry_id", inquiry.ID))
}

func (n *InquiryNotifier) publish(inquiry models.Inquiry) {
	body, err := json.Marshal(inquiry)
	if err != nil {
		n.logger.Error("Failed to encode inquiry", zap.String("inquiry_id", inquiry.ID), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()
	if err := n.publisher.Publish(ctx, body); err != nil {
		n.logger.Error("Failed to publish inquiry", zap.String("inquiry_id", inquiry.ID), zap.Error(err))
		return
	}
	n.logger.Info("Inquiry published", zap.String("inquiry_id", inquiry.ID))
}

func inquiryMail(inquiry models.Inquiry) (subject, body string) {
	subject = fmt.Sprintf("New inquiry from %s (%s)", inquiry.Name, inquiry.Theme)

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", inquiry.Name)
	fmt.Fprintf(&b, "Email: %s\n", inquiry.Email)
	fmt.Fprintf(&b, "Theme: %s\n", inquiry.Theme)
	fmt.Fprintf(&b, "Date: %s\n\n", inquiry.Date)
	b.WriteString(inquiry.Message)
	return subject, b.String()
}
