package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"docsign/internal/completion"
	"docsign/internal/config"
	"docsign/internal/model"
	"docsign/internal/pagination"
	"docsign/internal/service"
	serviceMocks "docsign/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testPagination = config.PaginationConfig{DefaultLimit: 10, MaxLimit: 100}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

// multipartBody builds a multipart form from plain fields plus optional file
// parts given as field name, filename, content type, payload.
func multipartBody(t *testing.T, fields map[string]string, files ...[4]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+f[0]+`"; filename="`+f[1]+`"`)
		h.Set("Content-Type", f[2])
		part, err := writer.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(f[3]))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Post("/documents", CreateDocument(mockSvc))

	t.Run("title only", func(t *testing.T) {
		body, ct := multipartBody(t, map[string]string{"title": "Quarterly Report"})

		expected := &model.Document{ID: uuid.New().String(), Title: "Quarterly Report", Status: model.StatusDraft}
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateDocumentInput) bool {
			return in.Title == "Quarterly Report" && in.File == nil && in.OwnerID == nil
		})).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.ID, result.ID)
		assert.Equal(t, model.StatusDraft, result.Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("with pdf file and owner", func(t *testing.T) {
		body, ct := multipartBody(t,
			map[string]string{"title": "Contract", "owner_id": "owner-1"},
			[4]string{"file", "contract.pdf", "application/pdf", "%PDF-1.4"},
		)

		expected := &model.Document{ID: uuid.New().String(), Title: "Contract"}
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.CreateDocumentInput) bool {
			return in.Title == "Contract" &&
				in.File != nil && in.File.Filename == "contract.pdf" && in.File.ContentType == "application/pdf" &&
				in.OwnerID != nil && *in.OwnerID == "owner-1"
		})).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing title", func(t *testing.T) {
		body, ct := multipartBody(t, map[string]string{})

		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrTitleRequired).Once()

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_FIELD", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-pdf payload", func(t *testing.T) {
		body, ct := multipartBody(t,
			map[string]string{"title": "Notes"},
			[4]string{"file", "notes.txt", "text/plain", "plain text"},
		)

		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrUnsupportedMediaType).Once()

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
		assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("owner not found", func(t *testing.T) {
		body, ct := multipartBody(t, map[string]string{"title": "Contract", "owner_id": "ghost"})

		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrOwnerNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "OWNER_NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdateDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Put("/documents/:id", UpdateDocument(mockSvc))

	t.Run("title only", func(t *testing.T) {
		id := uuid.New().String()
		body, ct := multipartBody(t, map[string]string{"title": "Renamed"})

		expected := &model.Document{ID: id, Title: "Renamed"}
		mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(in service.UpdateDocumentInput) bool {
			return in.Title != nil && *in.Title == "Renamed" && in.File == nil
		})).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/documents/"+id, body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no recognized fields", func(t *testing.T) {
		id := uuid.New().String()
		body, ct := multipartBody(t, map[string]string{"unrelated": "x"})

		mockSvc.On("Update", mock.Anything, id, mock.MatchedBy(func(in service.UpdateDocumentInput) bool {
			return in.Title == nil && in.File == nil
		})).Return(nil, service.ErrNoUpdateFields).Once()

		req := httptest.NewRequest(http.MethodPut, "/documents/"+id, body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_FIELD", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		body, ct := multipartBody(t, map[string]string{"title": "Renamed"})

		req := httptest.NewRequest(http.MethodPut, "/documents/not-a-uuid", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		body, ct := multipartBody(t, map[string]string{"title": "Renamed"})

		mockSvc.On("Update", mock.Anything, id, mock.Anything).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPut, "/documents/"+id, body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Delete("/documents/:id", DeleteDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage failure", func(t *testing.T) {
		id := uuid.New().String()
		wrapped := errors.Join(service.ErrStorage, errors.New("disk gone"))
		mockSvc.On("Delete", mock.Anything, id).Return(wrapped).Once()

		req := httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "STORAGE_ERROR", res.Error.Code)
		assert.NotContains(t, res.Error.Message, "disk gone")
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/documents/not-a-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})
}

func TestSignDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Post("/documents/:id/signature", SignDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		body, ct := multipartBody(t,
			map[string]string{"signer_id": "signer-1"},
			[4]string{"signature", "sig.png", "image/png", "pngbytes"},
		)

		signed := &model.Document{ID: id, Status: model.StatusSigned}
		mockSvc.On("Sign", mock.Anything, id, mock.AnythingOfType("service.FileUpload"), "signer-1").
			Return(signed, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/documents/"+id+"/signature", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, model.StatusSigned, result.Status)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing signer id", func(t *testing.T) {
		id := uuid.New().String()
		body, ct := multipartBody(t, nil, [4]string{"signature", "sig.png", "image/png", "pngbytes"})

		req := httptest.NewRequest(http.MethodPost, "/documents/"+id+"/signature", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_FIELD", decodeError(t, resp).Error.Code)
	})

	t.Run("missing signature file", func(t *testing.T) {
		id := uuid.New().String()
		body, ct := multipartBody(t, map[string]string{"signer_id": "signer-1"})

		req := httptest.NewRequest(http.MethodPost, "/documents/"+id+"/signature", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_FIELD", decodeError(t, resp).Error.Code)
	})

	t.Run("signer not found", func(t *testing.T) {
		id := uuid.New().String()
		body, ct := multipartBody(t,
			map[string]string{"signer_id": "ghost"},
			[4]string{"signature", "sig.png", "image/png", "pngbytes"},
		)

		mockSvc.On("Sign", mock.Anything, id, mock.AnythingOfType("service.FileUpload"), "ghost").
			Return(nil, service.ErrSignerNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/documents/"+id+"/signature", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "SIGNER_NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestListDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents", ListDocuments(mockSvc, testPagination))

	t.Run("success with defaults", func(t *testing.T) {
		expected := &service.DocumentPage{
			Items:      []model.Document{{ID: uuid.New().String(), Title: "Report"}},
			Total:      1,
			Page:       1,
			Limit:      10,
			TotalPages: 1,
		}
		mockSvc.On("ListPage", mock.Anything, 1, 10).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.DocumentPage
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, 1, result.TotalPages)
		mockSvc.AssertExpectations(t)
	})

	t.Run("limit capped at max", func(t *testing.T) {
		expected := &service.DocumentPage{Items: []model.Document{}, Page: 1, Limit: 100}
		mockSvc.On("ListPage", mock.Anything, 1, 100).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents?limit=5000", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-numeric page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/documents?page=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_PAGINATION", decodeError(t, resp).Error.Code)
	})

	t.Run("non-positive page", func(t *testing.T) {
		mockSvc.On("ListPage", mock.Anything, 0, 10).Return(nil, pagination.ErrInvalidArgument).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents?page=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_PAGINATION", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("ListPage", mock.Anything, 1, 10).Return(nil, errors.New("db down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestListDocumentSummaries(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/summaries", ListDocumentSummaries(mockSvc))

	t.Run("success", func(t *testing.T) {
		summaries := []model.DocumentSummary{{ID: uuid.New().String(), Title: "Report"}}
		mockSvc.On("ListSummaries", mock.Anything).Return(summaries, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/summaries", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data []model.DocumentSummary `json:"data"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Len(t, body.Data, 1)
		assert.Equal(t, "Report", body.Data[0].Title)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("ListSummaries", mock.Anything).Return(nil, errors.New("db down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/summaries", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/:id", GetDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		expected := &model.Document{ID: id, Title: "Report"}
		mockSvc.On("Get", mock.Anything, id).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/documents/invalid-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})
}

func TestGenerateJobDescription(t *testing.T) {
	mockSvc := new(serviceMocks.MockGenerationService)
	app := fiber.New()
	app.Post("/generate/job-description", GenerateJobDescription(mockSvc))

	postJSON := func(payload string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/generate/job-description", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.On("GenerateJobDescription", mock.Anything, "Backend Engineer").
			Return("A detailed description.", nil).Once()

		resp := postJSON(`{"job_title":"Backend Engineer"}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "A detailed description.", body["job_description"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing job title", func(t *testing.T) {
		mockSvc.On("GenerateJobDescription", mock.Anything, "").
			Return("", service.ErrJobTitleRequired).Once()

		resp := postJSON(`{}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_FIELD", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("provider failure", func(t *testing.T) {
		mockSvc.On("GenerateJobDescription", mock.Anything, "Backend Engineer").
			Return("", completion.ErrDependency).Once()

		resp := postJSON(`{"job_title":"Backend Engineer"}`)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, "DEPENDENCY_FAILURE", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("provider timeout", func(t *testing.T) {
		mockSvc.On("GenerateJobDescription", mock.Anything, "Backend Engineer").
			Return("", completion.ErrTimeout).Once()

		resp := postJSON(`{"job_title":"Backend Engineer"}`)

		assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
		assert.Equal(t, "DEPENDENCY_TIMEOUT", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	mockSvc := new(serviceMocks.MockDocumentService)
	mockGen := new(serviceMocks.MockGenerationService)
	RegisterRoutes(app, nil, mockSvc, mockGen, testPagination)

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("summaries route not shadowed by id route", func(t *testing.T) {
		mockSvc.On("ListSummaries", mock.Anything).Return([]model.DocumentSummary{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents/summaries", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
