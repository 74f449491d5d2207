package services

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"hall-booking-api/config"
	"hall-booking-api/models"
)

const (
	mailQueueName = "booking.emails"
	// A job is dropped after this many failed delivery attempts.
	mailMaxAttempts = 5
)

// EmailJob is the outbox payload for one notification email.
type EmailJob struct {
	To       []string `json:"to"`
	Subject  string   `json:"subject"`
	HTML     string   `json:"html"`
	Attempts int      `json:"attempts"`
}

// MailOutbox publishes notification emails to a durable broker queue and
// consumes them with bounded retry. When the broker is unreachable the
// enqueue degrades to a fire-and-forget inline send, so a broker outage never
// blocks an approval. Failures only ever reach the log.
type MailOutbox struct {
	url  string
	send func(to []string, subject, html string) error
}

func NewMailOutbox(url string) *MailOutbox {
	return &MailOutbox{url: url, send: config.SendMail}
}

// Enqueue hands a job to the broker; on failure it falls back to sending
// inline in a goroutine.
func (o *MailOutbox) Enqueue(ctx context.Context, job EmailJob) {
	if len(job.To) == 0 {
		return
	}
	if err := o.publish(ctx, job); err != nil {
		log.Printf("mail outbox: enqueue failed, sending inline: %v", err)
		go o.deliverOnce(job)
	}
}

func (o *MailOutbox) publish(ctx context.Context, job EmailJob) error {
	conn, err := amqp.Dial(o.url)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so jobs survive broker restarts.
	if _, err := ch.QueueDeclare(mailQueueName, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(job)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx,
		"",            // default exchange
		mailQueueName, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

// StartWorker consumes the queue until ctx is done, redialing with a fixed
// backoff after broker errors.
func (o *MailOutbox) StartWorker(ctx context.Context) {
	for {
		if err := o.consume(ctx); err != nil {
			log.Printf("mail outbox: consumer stopped: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (o *MailOutbox) consume(ctx context.Context) error {
	conn, err := amqp.Dial(o.url)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(mailQueueName, true, false, false, false, nil); err != nil {
		return err
	}

	msgs, err := ch.Consume(mailQueueName, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			o.handleDelivery(ctx, d)
		}
	}
}

func (o *MailOutbox) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var job EmailJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		log.Printf("mail outbox: dropping malformed job: %v", err)
		_ = d.Ack(false)
		return
	}

	if err := o.send(job.To, job.Subject, job.HTML); err != nil {
		job.Attempts++
		if job.Attempts < mailMaxAttempts {
			log.Printf("mail outbox: send failed (attempt %d, subject=%q): %v", job.Attempts, job.Subject, err)
			if pubErr := o.publish(ctx, job); pubErr != nil {
				log.Printf("mail outbox: requeue failed, job lost (subject=%q): %v", job.Subject, pubErr)
			}
		} else {
			log.Printf("mail outbox: giving up after %d attempts (subject=%q to=%v): %v",
				job.Attempts, job.Subject, job.To, err)
		}
	}
	_ = d.Ack(false)
}

// deliverOnce is the inline fallback: one attempt, failure logged.
func (o *MailOutbox) deliverOnce(job EmailJob) {
	if err := o.send(job.To, job.Subject, job.HTML); err != nil {
		log.Printf("mail outbox: inline send failed (subject=%q to=%v): %v", job.Subject, job.To, err)
	}
}

// NewApprovalEmailJob builds the approval email for a request, summarizing
// event name, dates, times, hall names and the requester's role or club.
func NewApprovalEmailJob(req *models.BookingRequest) EmailJob {
	subject := fmt.Sprintf("Booking approved: %s", req.EventName)
	halls := strings.Join(req.HallNames(), ", ")
	requestedBy := req.Requester.Role
	if req.Requester.Role == models.RoleClubs && req.Requester.ClubName != nil {
		requestedBy = fmt.Sprintf("%s (%s)", *req.Requester.ClubName, req.Requester.Role)
	}

	lines := []string{
		fmt.Sprintf("Your booking request for %q has been approved.", req.EventName),
		fmt.Sprintf("Date: %s to %s", req.StartDate.Format("02 Jan 2006"), req.EndDate.Format("02 Jan 2006")),
		fmt.Sprintf("Time: %s - %s", req.StartTime, req.EndTime),
		fmt.Sprintf("Hall(s): %s", halls),
		fmt.Sprintf("Requested by: %s", requestedBy),
	}

	return EmailJob{
		To:      []string{req.Requester.Email},
		Subject: subject,
		HTML:    buildFormalEmailHTML(subject, req.Requester.DisplayName(), strings.Join(lines, "\n")),
	}
}

func buildFormalEmailHTML(subject, recipientName, message string) string {
	name := strings.TrimSpace(recipientName)
	if name == "" {
		name = "there"
	}

	escapedSubject := template.HTMLEscapeString(subject)
	escapedGreeting := template.HTMLEscapeString(fmt.Sprintf("Dear %s,", name))
	escapedMessage := template.HTMLEscapeString(strings.TrimSpace(message))
	escapedMessage = strings.ReplaceAll(strings.ReplaceAll(escapedMessage, "\r\n", "\n"), "\r", "\n")
	escapedMessage = strings.ReplaceAll(escapedMessage, "\n", "<br />")

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
</head>
<body style="margin:0;padding:0;background-color:#f9fafb;font-family:'Segoe UI',Tahoma,Arial,sans-serif;">
<div style="max-width:640px;margin:0 auto;padding:24px 20px;">
  <div style="background-color:#ffffff;border:1px solid #e5e7eb;border-radius:12px;padding:24px 24px 28px 24px;">
    <p style="margin:0 0 16px 0;font-size:16px;line-height:1.7;color:#111827;">%s</p>
    <p style="margin:0 0 0 0;font-size:16px;line-height:1.7;color:#111827;word-break:break-word;">%s</p>
  </div>
</div>
</body>
</html>`, escapedSubject, escapedGreeting, escapedMessage)
}
