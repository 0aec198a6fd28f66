package storage

import (
	"bufio"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RedisConfig captures the connection parameters for the Redis-backed sink.
type RedisConfig struct {
	Address  string
	Username string
	Password string
	DB       int
	TLS      bool
	Timeout  time.Duration
}

const defaultRedisTimeout = 5 * time.Second

// RedisSink implements Sink over the small subset of the Redis protocol the
// state store needs: AUTH, SELECT, GET, SET and DEL. It keeps one connection
// guarded by a mutex; session blobs are low-frequency writes, so connection
// pooling would buy nothing here.
type RedisSink struct {
	cfg    RedisConfig
	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
}

// NewRedisSink dials Redis eagerly so misconfiguration surfaces at startup.
func NewRedisSink(cfg RedisConfig) (*RedisSink, error) {
	cfg.Address = strings.TrimSpace(cfg.Address)
	if cfg.Address == "" {
		return nil, errors.New("storage: redis address is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRedisTimeout
	}

	sink := &RedisSink{cfg: cfg}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if err := sink.connectLocked(context.Background()); err != nil {
		return nil, err
	}
	return sink, nil
}

// Close tears down the underlying connection.
func (s *RedisSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	s.reader = nil
	return err
}

// Save stores the blob under key without expiry.
func (s *RedisSink) Save(ctx context.Context, key string, blob []byte) error {
	resp, err := s.do(ctx, "SET", key, string(blob))
	if err != nil {
		return err
	}
	if status, ok := resp.(string); !ok || !strings.EqualFold(status, "OK") {
		return fmt.Errorf("storage: redis SET returned %v", resp)
	}
	return nil
}

// Load retrieves the blob stored under key.
func (s *RedisSink) Load(ctx context.Context, key string) ([]byte, bool, error) {
	resp, err := s.do(ctx, "GET", key)
	if err != nil {
		return nil, false, err
	}

	switch v := resp.(type) {
	case nil:
		return nil, false, nil
	case []byte:
		return v, true, nil
	default:
		return nil, false, fmt.Errorf("storage: unexpected redis response type %T", v)
	}
}

// Delete removes the blob stored under key; missing keys are not an error.
func (s *RedisSink) Delete(ctx context.Context, key string) error {
	_, err := s.do(ctx, "DEL", key)
	return err
}

func (s *RedisSink) do(ctx context.Context, args ...string) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.connectLocked(ctx); err != nil {
		return nil, err
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(s.cfg.Timeout)
	}
	if err := s.conn.SetDeadline(deadline); err != nil {
		s.dropLocked()
		return nil, err
	}

	if err := writeCommand(s.conn, args); err != nil {
		s.dropLocked()
		return nil, err
	}

	resp, err := readReply(s.reader)
	if err != nil {
		s.dropLocked()
		return nil, err
	}
	return resp, nil
}

func (s *RedisSink) connectLocked(ctx context.Context) error {
	if s.conn != nil {
		return nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	var (
		conn net.Conn
		err  error
	)
	if s.cfg.TLS {
		dialer := &tls.Dialer{NetDialer: &net.Dialer{}}
		conn, err = dialer.DialContext(dialCtx, "tcp", s.cfg.Address)
	} else {
		dialer := &net.Dialer{}
		conn, err = dialer.DialContext(dialCtx, "tcp", s.cfg.Address)
	}
	if err != nil {
		return err
	}

	reader := bufio.NewReader(conn)
	_ = conn.SetDeadline(time.Now().Add(s.cfg.Timeout))

	handshake := func(args ...string) error {
		if err := writeCommand(conn, args); err != nil {
			return err
		}
		resp, err := readReply(reader)
		if err != nil {
			return err
		}
		if status, ok := resp.(string); !ok || !strings.EqualFold(status, "OK") {
			return fmt.Errorf("storage: redis %s failed: %v", args[0], resp)
		}
		return nil
	}

	if s.cfg.Password != "" {
		args := []string{"AUTH", s.cfg.Password}
		if s.cfg.Username != "" {
			args = []string{"AUTH", s.cfg.Username, s.cfg.Password}
		}
		if err := handshake(args...); err != nil {
			conn.Close()
			return err
		}
	}

	if s.cfg.DB > 0 {
		if err := handshake("SELECT", strconv.Itoa(s.cfg.DB)); err != nil {
			conn.Close()
			return err
		}
	}

	if err := conn.SetDeadline(time.Time{}); err != nil {
		conn.Close()
		return err
	}

	s.conn = conn
	s.reader = reader
	return nil
}

func (s *RedisSink) dropLocked() {
	if s.conn != nil {
		_ = s.conn.Close()
	}
	s.conn = nil
	s.reader = nil
}

func writeCommand(conn net.Conn, args []string) error {
	var builder strings.Builder
	builder.WriteByte('*')
	builder.WriteString(strconv.Itoa(len(args)))
	builder.WriteString("\r\n")
	for _, arg := range args {
		builder.WriteByte('$')
		builder.WriteString(strconv.Itoa(len(arg)))
		builder.WriteString("\r\n")
		builder.WriteString(arg)
		builder.WriteString("\r\n")
	}
	_, err := conn.Write([]byte(builder.String()))
	return err
}

func readReply(r *bufio.Reader) (interface{}, error) {
	prefix, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	line, err := readLine(r)
	if err != nil {
		return nil, err
	}

	switch prefix {
	case '+':
		return line, nil
	case '-':
		return nil, errors.New(line)
	case ':':
		return strconv.ParseInt(line, 10, 64)
	case '$':
		length, convErr := strconv.Atoi(line)
		if convErr != nil {
			return nil, convErr
		}
		if length == -1 {
			return nil, nil
		}
		buf := make([]byte, length+2) // payload plus trailing CRLF
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		if buf[length] != '\r' || buf[length+1] != '\n' {
			return nil, errors.New("storage: malformed redis bulk reply")
		}
		return buf[:length], nil
	default:
		return nil, fmt.Errorf("storage: unexpected redis reply prefix %q", prefix)
	}
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
