package ulog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fastjson"
)

// RemoteOptions configures the export sink. Zero values get the defaults
// below.
type RemoteOptions struct {
	ServerURL  string
	APIKey     string
	Service    string
	IDDir      string        // default ~/.ulog
	QueueSize  int           // default 10000
	BatchSize  int           // default 100
	FlushEvery time.Duration // default 1s
}

// exportRecord is the wire shape of one shipped record.
type exportRecord struct {
	Timestamp  int64  `json:"timestamp"`
	Level      string `json:"level"`
	Message    string `json:"message"`
	Service    string `json:"service"`
	Host       string `json:"host"`
	InstanceID string `json:"instance_id"`
	Meta       Meta   `json:"meta"`
}

// RemoteSink ships records to an export server in zstd-compressed JSON
// batches. Delivery is best effort: a full queue drops the record, a failed
// send discards the batch, and both are reported on stderr rather than back
// into the dispatch path.
type RemoteSink struct {
	opts       RemoteOptions
	instanceID string
	host       string
	queue      chan []byte
	done       chan struct{}
	wg         sync.WaitGroup
	encoder    *zstd.Encoder
	client     *http.Client
}

func NewRemoteSink(opts RemoteOptions) *RemoteSink {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 10000
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	if opts.FlushEvery <= 0 {
		opts.FlushEvery = time.Second
	}

	enc, _ := zstd.NewWriter(nil)
	host, _ := os.Hostname()
	id, _ := ensureInstanceID(opts.IDDir)

	s := &RemoteSink{
		opts:       opts,
		instanceID: id,
		host:       host,
		queue:      make(chan []byte, opts.QueueSize),
		done:       make(chan struct{}),
		encoder:    enc,
		client:     &http.Client{Timeout: 5 * time.Second},
	}

	// Register asynchronously so sink construction never blocks startup.
	go func() {
		if err := s.handshake(); err != nil {
			fmt.Fprintf(os.Stderr, "ulog: export handshake failed: %v\n", err)
		}
	}()

	s.wg.Add(1)
	go s.runLoop()

	return s
}

func (s *RemoteSink) Write(sev Severity, msg string, meta Meta) {
	rec := exportRecord{
		Timestamp:  time.Now().UnixNano(),
		Level:      sev.String(),
		Message:    msg,
		Service:    s.opts.Service,
		Host:       s.host,
		InstanceID: s.instanceID,
		Meta:       meta,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return
	}

	select {
	case s.queue <- data:
	default:
		fmt.Fprintf(os.Stderr, "ulog: export queue full, dropping record\n")
	}
}

func (s *RemoteSink) runLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.opts.FlushEvery)
	defer ticker.Stop()

	var batch [][]byte

	send := func() {
		if len(batch) == 0 {
			return
		}

		// Encode as a JSON array: [ {}, {}, {} ]
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, b := range batch {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(b)
		}
		buf.WriteByte(']')

		body := s.encoder.EncodeAll(buf.Bytes(), nil)

		req, err := http.NewRequest("POST", strings.TrimRight(s.opts.ServerURL, "/")+"/api/ingest/batch", bytes.NewReader(body))
		if err == nil {
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Content-Encoding", "zstd")
			req.Header.Set("Authorization", "Bearer "+s.opts.APIKey)
			req.Header.Set("X-Instance-ID", s.instanceID)

			resp, err := s.client.Do(req)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ulog: export network error: %v\n", err)
			} else {
				resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					fmt.Fprintf(os.Stderr, "ulog: export send failed: HTTP %d\n", resp.StatusCode)
				}
			}
		}

		batch = nil
	}

	for {
		select {
		case data := <-s.queue:
			batch = append(batch, data)
			if len(batch) >= s.opts.BatchSize {
				send()
			}
		case <-ticker.C:
			send()
		case <-s.done:
			// Flush whatever is still queued.
			for {
				select {
				case data := <-s.queue:
					batch = append(batch, data)
				default:
					send()
					return
				}
			}
		}
	}
}

// Shutdown drains the queue and stops the sender.
func (s *RemoteSink) Shutdown() {
	close(s.done)
	s.wg.Wait()
}

// handshake announces this instance to the export server and checks the
// acknowledgement status.
func (s *RemoteSink) handshake() error {
	reqBody := map[string]string{
		"instance_id":  s.instanceID,
		"service_name": s.opts.Service,
		"host_name":    s.host,
		"platform":     fmt.Sprintf("go-%s", runtime.Version()),
		"version":      "0.1.0",
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", strings.TrimRight(s.opts.ServerURL, "/")+"/api/registry/handshake", bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.opts.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("handshake failed: %d %s", resp.StatusCode, string(body))
	}

	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return fmt.Errorf("handshake response unreadable: %w", err)
	}
	if status := string(v.GetStringBytes("status")); status != "ok" {
		return fmt.Errorf("handshake rejected: status %q", status)
	}
	return nil
}

// ensureInstanceID keeps one stable ID per user in <dir>/id, falling back to
// an ephemeral ID when the directory is unavailable. An empty dir means
// ~/.ulog.
func ensureInstanceID(dir string) (string, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return uuid.New().String(), nil
		}
		dir = filepath.Join(homeDir, ".ulog")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return uuid.New().String(), nil
	}

	idFile := filepath.Join(dir, "id")
	if data, err := os.ReadFile(idFile); err == nil {
		return strings.TrimSpace(string(data)), nil
	}

	newID := uuid.New().String()
	_ = os.WriteFile(idFile, []byte(newID), 0644)
	return newID, nil
}
