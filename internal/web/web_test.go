package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/speech-digest/internal/config"
	"github.com/nguyentantai21042004/speech-digest/internal/input"
	"github.com/nguyentantai21042004/speech-digest/internal/logger"
	"github.com/nguyentantai21042004/speech-digest/internal/processor"
	"github.com/nguyentantai21042004/speech-digest/internal/translator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeProcessor struct {
	res   *processor.Result
	err   error
	reqs  []processor.Request
	ctxOK bool
}

func (f *fakeProcessor) Process(ctx context.Context, req processor.Request) (*processor.Result, error) {
	f.reqs = append(f.reqs, req)
	_, f.ctxOK = ctx.Deadline()
	return f.res, f.err
}

func (f *fakeProcessor) ProcessFile(context.Context, string) error { return nil }

func newServer(t *testing.T, proc *fakeProcessor) *gin.Engine {
	t.Helper()
	r, err := NewRouter(config.Default(), proc, logger.Nop())
	require.NoError(t, err)
	return r
}

type upload struct {
	name string
	data []byte
}

func multipartRequest(t *testing.T, path string, fields map[string]string, file *upload) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile("speech_file", file.name)
		require.NoError(t, err)
		_, err = fw.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doneResult() *processor.Result {
	return &processor.Result{
		Summary:    "1. Courage matters.",
		Language:   translator.English,
		ChunkCount: 2,
		Duration:   1500 * time.Millisecond,
	}
}

func TestIndex(t *testing.T) {
	w := serve(newServer(t, &fakeProcessor{}), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Generate Summary")
	assert.Contains(t, body, `data-state="idle"`)
	for _, l := range translator.Languages {
		assert.Contains(t, body, ">"+l.String()+"<")
	}
	assert.Contains(t, body, `<option value="English" selected>`)
}

func TestSummarize_PastedText(t *testing.T) {
	proc := &fakeProcessor{res: doneResult()}
	req := multipartRequest(t, "/summarize", map[string]string{
		"speech_text": "Ask not what your country can do for you",
		"language":    "english",
	}, nil)

	w := serve(newServer(t, proc), req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-state="done"`)
	assert.Contains(t, w.Body.String(), "1. Courage matters.")
	assert.Contains(t, w.Body.String(), "2 chunk(s) in 1.5s")

	require.Len(t, proc.reqs, 1)
	assert.Equal(t, "Ask not what your country can do for you", proc.reqs[0].Source.Text)
	assert.Nil(t, proc.reqs[0].Source.File)
	assert.Equal(t, translator.English, proc.reqs[0].Language)
	assert.True(t, proc.ctxOK, "pipeline context must carry the run timeout")
}

func TestSummarize_FileUpload(t *testing.T) {
	proc := &fakeProcessor{res: &processor.Result{
		Summary: "Résumé", Language: translator.French, Translated: true, ChunkCount: 1,
	}}
	req := multipartRequest(t, "/summarize",
		map[string]string{"speech_text": "ignored", "language": "French"},
		&upload{name: "speech.txt", data: []byte("Hello world")})

	w := serve(newServer(t, proc), req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Summary (French)")
	require.Len(t, proc.reqs, 1)
	require.NotNil(t, proc.reqs[0].Source.File)
	assert.Equal(t, "speech.txt", proc.reqs[0].Source.File.Name)
	assert.Equal(t, []byte("Hello world"), proc.reqs[0].Source.File.Data)
	assert.Equal(t, translator.French, proc.reqs[0].Language)
}

func TestSummarize_Errors(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]string
		file       *upload
		procErr    error
		wantStatus int
		wantBody   string
		wantCalls  int
	}{
		{
			name:       "no input stays idle with info",
			fields:     map[string]string{"speech_text": ""},
			procErr:    input.ErrInputMissing,
			wantStatus: http.StatusOK,
			wantBody:   "Please paste a speech or upload a file",
			wantCalls:  1,
		},
		{
			name:       "unsupported extension rejected before the pipeline",
			fields:     map[string]string{"speech_text": "x"},
			file:       &upload{name: "speech.docx", data: []byte("x")},
			wantStatus: http.StatusBadRequest,
			wantBody:   "speech.docx",
		},
		{
			name:       "unknown language",
			fields:     map[string]string{"speech_text": "x", "language": "Latin"},
			wantStatus: http.StatusBadRequest,
			wantBody:   "unsupported language",
		},
		{
			name:       "corrupt pdf",
			file:       &upload{name: "broken.pdf", data: []byte("junk")},
			procErr:    fmt.Errorf("extract broken.pdf: %w", input.ErrExtraction),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "extract broken.pdf",
			wantCalls:  1,
		},
		{
			name:       "model failure",
			fields:     map[string]string{"speech_text": "x"},
			procErr:    errors.New("summarize: groq api error: 503"),
			wantStatus: http.StatusBadGateway,
			wantBody:   "Summarization failed",
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := &fakeProcessor{err: tt.procErr}
			w := serve(newServer(t, proc), multipartRequest(t, "/summarize", tt.fields, tt.file))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.Contains(t, w.Body.String(), `data-state="idle"`)
			assert.Len(t, proc.reqs, tt.wantCalls)
		})
	}
}

func TestSummarizeJSON(t *testing.T) {
	proc := &fakeProcessor{res: doneResult()}
	req := multipartRequest(t, "/api/summarize", map[string]string{"speech_text": "words"}, nil)

	w := serve(newServer(t, proc), req)
	require.Equal(t, http.StatusOK, w.Code)

	var got summaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, summaryResponse{
		Summary:    "1. Courage matters.",
		Language:   "English",
		ChunkCount: 2,
		DurationMS: 1500,
	}, got)
}

func TestSummarizeJSON_InputMissing(t *testing.T) {
	proc := &fakeProcessor{err: input.ErrInputMissing}
	req := multipartRequest(t, "/api/summarize", nil, nil)
	req.Header.Set(requestIDHeader, "req-7")

	w := serve(newServer(t, proc), req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var got errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, infoInputMissing, got.Error)
	assert.Equal(t, "req-7", got.RequestID)
}

func TestExportDOCX(t *testing.T) {
	form := url.Values{"summary": {"1. Courage matters."}, "language": {"Spanish"}}
	req := httptest.NewRequest(http.MethodPost, "/export/docx", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := serve(newServer(t, &fakeProcessor{}), req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, docxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="Speech_Summary_Spanish.docx"`)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func TestExportDOCX_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/export/docx", strings.NewReader("summary=+"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := serve(newServer(t, &fakeProcessor{}), req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthzAndMetrics(t *testing.T) {
	r := newServer(t, &fakeProcessor{})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRequestIDHeader(t *testing.T) {
	r := newServer(t, &fakeProcessor{})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Len(t, w.Header().Get(requestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc")
	w = serve(r, req)
	assert.Equal(t, "abc", w.Header().Get(requestIDHeader))
}
