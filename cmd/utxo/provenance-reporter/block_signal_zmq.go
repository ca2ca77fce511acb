//go:build zmq

package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-provenance/internal/clock"
	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

const zmqRecvTimeout = time.Second

// startBlockSignal subscribes to hashblock notifications on addr and coalesces them into a
// channel with one pending wakeup. A nil channel is returned when addr is empty.
func startBlockSignal(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr == "" {
		return nil, nil
	}

	sub, err := newSubscriber(addr, "hashblock")
	if err != nil {
		return nil, fmt.Errorf("connect zmq %s: %w", addr, err)
	}
	logger.Info("subscribed to new block notifications", zap.String("addr", addr))

	notify := make(chan struct{}, 1)
	go func() {
		defer func() {
			_ = sub.Close()
		}()
		for ctx.Err() == nil {
			parts, err := sub.RecvMessageBytes(0)
			if err != nil {
				if zmq4.AsErrno(err) == zmq4.Errno(syscall.EAGAIN) {
					continue
				}
				logger.Warn("zmq recv failed", zap.Error(err))
				_ = clock.SleepWithContext(ctx, zmqRecvTimeout)
				continue
			}
			// topic, block hash, sequence
			if len(parts) < 2 {
				logger.Warn("skip malformed zmq message", zap.Int("parts", len(parts)))
				continue
			}
			logger.Debug("new block announced", zap.String("hash", hex.EncodeToString(parts[1])))

			select {
			case notify <- struct{}{}:
			default:
			}
		}
	}()

	return notify, nil
}

func newSubscriber(addr string, topics ...string) (*zmq4.Socket, error) {
	sub, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, err
	}
	if err := sub.SetRcvtimeo(zmqRecvTimeout); err != nil {
		_ = sub.Close()
		return nil, err
	}
	for _, topic := range topics {
		if err := sub.SetSubscribe(topic); err != nil {
			_ = sub.Close()
			return nil, err
		}
	}
	if err := sub.Connect(addr); err != nil {
		_ = sub.Close()
		return nil, err
	}
	return sub, nil
}
