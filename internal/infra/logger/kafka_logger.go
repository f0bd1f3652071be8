package logger

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

const kafkaWriteTimeout = 5 * time.Second

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaLogger 實作 io.Writer, 讓 zerolog 把每一行 log 送到 kafka
// key 為遞增的 log id, 讓 balancer 平均分散到各分區
// writer 為 async, Write 不等 broker 回應, 送失敗的筆數記在 dropped
type KafkaLogger struct {
	w       Writer
	logId   atomic.Int64
	dropped atomic.Int64
	// async 送出失敗時寫到這裡, 不能寫回 logger 本身
	errOut io.Writer
}

func NewKafkaLogger(brokers []string, topic string) (*KafkaLogger, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}

	kl := newKafkaLogger(nil)
	kl.w = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: kafkaWriteTimeout,
		MaxAttempts:  3,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion:   kl.onCompletion,
	}
	return kl, nil
}

func newKafkaLogger(w Writer) *KafkaLogger {
	return &KafkaLogger{w: w, errOut: os.Stderr}
}

func (kw *KafkaLogger) onCompletion(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	total := kw.dropped.Add(int64(len(messages)))
	fmt.Fprintf(kw.errOut, "kafka logger: %d messages dropped (total %d): %v\n", len(messages), total, err)
}

// Dropped async 送出失敗的 log 筆數
func (kw *KafkaLogger) Dropped() int64 {
	return kw.dropped.Load()
}

func (kw *KafkaLogger) Write(p []byte) (n int, err error) {
	if kw == nil || kw.w == nil {
		return 0, fmt.Errorf("kafka logger is not init")
	}

	id := kw.logId.Add(1)
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))

	// zerolog 會重用 p 的 buffer
	value := make([]byte, len(p))
	copy(value, p)

	ctx, cancel := context.WithTimeout(context.Background(), kafkaWriteTimeout)
	defer cancel()

	if err := kw.w.WriteMessages(ctx, kafka.Message{Key: key, Value: value}); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (kw *KafkaLogger) Close() error {
	return kw.w.Close()
}
