package kafka_test

import (
	"context"
	"testing"
	"time"

	"hms/config"
	"hms/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerEvent struct {
	Patient string `json:"patient"`
	Amount  string `json:"amount"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "alice", Value: ledgerEvent{Patient: "alice", Amount: "-200"}}

	out, err := msg.ToKafkaMessage("hms.billing.ledger")
	require.NoError(t, err)

	assert.Equal(t, "hms.billing.ledger", out.Topic)
	assert.Equal(t, []byte("alice"), out.Key)
	assert.JSONEq(t, `{"patient":"alice","amount":"-200"}`, string(out.Value))

	_, err = (&kafka.Message{Value: make(chan int)}).ToKafkaMessage("t")
	assert.Error(t, err)
}

func TestDecodeKafkaMessage(t *testing.T) {
	event, err := kafka.DecodeKafkaMessage[ledgerEvent](kafkaGo.Message{Value: []byte(`{"patient":"bob","amount":"500"}`)})
	require.NoError(t, err)
	assert.Equal(t, ledgerEvent{Patient: "bob", Amount: "500"}, event)

	_, err = kafka.DecodeKafkaMessage[ledgerEvent](kafkaGo.Message{Value: []byte(`{`)})
	assert.Error(t, err)
}

func TestNew_WithoutBrokers(t *testing.T) {
	client := kafka.New(&config.Config{})

	assert.NoError(t, client.SendMessages(context.Background(), "topic", kafka.Message{Key: "k", Value: 1}))
	assert.Nil(t, client.Reader("", "topic"))
	assert.NoError(t, client.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		client.Consume(ctx, "", "topic", func(context.Context, kafkaGo.Message) error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after context cancellation")
	}
}
