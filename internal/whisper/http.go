package whisper

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Option configures an HTTPTranscriber, matching the functional-options style
// of glyphoxa's pkg/provider/stt/whisper.Option.
type Option func(*HTTPTranscriber)

// WithHTTPClient overrides the default http.Client (e.g. for test doubles).
func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTPTranscriber) { t.httpClient = c }
}

// HTTPTranscriber talks to a whisper.cpp server's /inference endpoint over
// HTTP, encoding the provided samples as a WAV file and parsing the JSON
// response's concatenated segment text. Grounded directly on
// pkg/provider/stt/whisper.Provider.infer/encodeWAV.
type HTTPTranscriber struct {
	serverURL  string
	httpClient *http.Client
}

// NewHTTP builds an HTTPTranscriber pointed at serverURL (e.g.
// "http://127.0.0.1:8081", a locally running whisper.cpp server instance).
func NewHTTP(serverURL string, opts ...Option) (*HTTPTranscriber, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("whisper: server URL must not be empty")
	}
	t := &HTTPTranscriber{
		serverURL:  strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Transcribe implements Transcriber.
func (t *HTTPTranscriber) Transcribe(ctx context.Context, audio16kMono []float32, cfg Config) (string, error) {
	if len(audio16kMono) == 0 {
		return "", nil
	}
	wav := encodeWAV(audio16kMono, 16000)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	part, err := mw.CreateFormFile("file", "utterance.wav")
	if err != nil {
		return "", fmt.Errorf("%w: multipart create: %v", ErrModelStateCreationFailed, err)
	}
	if _, err := part.Write(wav); err != nil {
		return "", fmt.Errorf("%w: multipart write: %v", ErrModelStateCreationFailed, err)
	}
	_ = mw.WriteField("response_format", "json")
	_ = mw.WriteField("temperature", "0")
	_ = mw.WriteField("best_of", "1")
	_ = mw.WriteField("beam_size", "1")
	if cfg.Threads > 0 {
		_ = mw.WriteField("threads", strconv.Itoa(cfg.Threads))
	}
	if cfg.Language != "" {
		_ = mw.WriteField("language", cfg.Language)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: multipart close: %v", ErrModelStateCreationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.serverURL+"/inference", body)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrDecodeFailed, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrDecodeFailed, err)
	}
	if resp.StatusCode == http.StatusUnprocessableEntity {
		return "", fmt.Errorf("%w: %s", ErrLanguageUnknown, strings.TrimSpace(string(respBody)))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: server returned %d: %s", ErrDecodeFailed, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var decoded struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrDecodeFailed, err)
	}
	return strings.TrimSpace(decoded.Text), nil
}

// encodeWAV builds a minimal 16-bit PCM mono RIFF/WAV file from float32
// samples in [-1, 1], matching pkg/provider/stt/whisper.encodeWAV's 44-byte
// header layout.
func encodeWAV(samples []float32, sampleRate int) []byte {
	dataLen := len(samples) * 2
	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))       // PCM fmt chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))        // PCM format
	binary.Write(buf, binary.LittleEndian, uint16(1))        // mono
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(buf, binary.LittleEndian, uint16(16))           // bits per sample
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataLen))

	for _, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int16(s * 32767)
		binary.Write(buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}
