package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"susunara/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartSMSConsumer drains sms.outbound and hands each message to the
// gateway. It runs a reconnect loop with capped backoff and never returns;
// callers start it in its own goroutine. A message the gateway rejects is
// nacked without requeue so a bad payload cannot spin the loop.
func StartSMSConsumer(gateway interfaces.ISMSGateway) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL())
		if err != nil {
			log.Printf("[sms][consumer] dial failed: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeSMSLoop(conn, gateway); err != nil {
			log.Printf("[sms][consumer] consume loop ended: %v; reconnecting", err)
			_ = conn.Close()
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeSMSLoop(conn *amqp.Connection, gateway interfaces.ISMSGateway) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(smsQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(smsQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleSMSMessage(d.Body, gateway); err != nil {
			log.Printf("[sms][consumer] handle message failed: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleSMSMessage(body []byte, gateway interfaces.ISMSGateway) error {
	var sms interfaces.OutboundSMS
	if err := json.Unmarshal(body, &sms); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if sms.Receiver == "" {
		return errors.New("empty receiver")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return gateway.Send(ctx, sms.Receiver, sms.Message)
}
