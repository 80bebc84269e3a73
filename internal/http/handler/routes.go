package handler

import (
	"context"
	"database/sql"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docsign/internal/config"
	"docsign/internal/service"
)

// fileFromHeader adapts a parsed multipart part into the service upload DTO.
// The returned closer releases the underlying part and must be called after
// the service has consumed the reader.
func fileFromHeader(fh *multipart.FileHeader) (*service.FileUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &service.FileUpload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: ct,
		Size:        fh.Size,
	}, func() { _ = f.Close() }, nil
}

// HealthCheck reports readiness by pinging the database.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a trivial probe that answers as long as the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// CreateDocument handles multipart document creation. Recognized fields:
// title (required), file (optional PDF), owner_id (optional).
func CreateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.CreateDocumentInput{Title: c.FormValue("title")}
		if owner := c.FormValue("owner_id"); owner != "" {
			in.OwnerID = &owner
		}

		if fh, err := c.FormFile("file"); err == nil {
			file, closeFn, err := fileFromHeader(fh)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer closeFn()
			in.File = file
		}

		doc, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// UpdateDocument applies a partial update. Absent fields keep their stored
// values; sending neither title nor file is rejected by the service.
func UpdateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		in := service.UpdateDocumentInput{}
		if form, err := c.MultipartForm(); err == nil {
			// Presence matters here, not just non-emptiness: an absent
			// title differs from an explicitly empty one.
			if vals, ok := form.Value["title"]; ok && len(vals) > 0 {
				in.Title = &vals[0]
			}
		}
		if fh, err := c.FormFile("file"); err == nil {
			file, closeFn, err := fileFromHeader(fh)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer closeFn()
			in.File = file
		}

		doc, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes a document's artifacts and record.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SignDocument attaches a signature image and transitions the document to
// signed. Recognized fields: signature (required file), signer_id (required).
func SignDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		signerID := c.FormValue("signer_id")
		if signerID == "" {
			return writeServiceError(c, service.ErrSignerIDRequired)
		}
		fh, err := c.FormFile("signature")
		if err != nil {
			return writeServiceError(c, service.ErrSignatureRequired)
		}
		file, closeFn, err := fileFromHeader(fh)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer closeFn()

		doc, err := svc.Sign(c.UserContext(), id, *file, signerID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// ListDocuments returns one page of documents, most recent first.
// Query params: page (1-based, default 1) and limit (default and cap from
// configuration).
func ListDocuments(svc service.DocumentService, pg config.PaginationConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := strconv.Atoi(c.Query("page", "1"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "page must be an integer")
		}
		limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(pg.DefaultLimit)))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "limit must be an integer")
		}
		if limit > pg.MaxLimit {
			limit = pg.MaxLimit
		}

		res, err := svc.ListPage(c.UserContext(), page, limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListDocumentSummaries returns id and title pairs for every document.
func ListDocumentSummaries(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.ListSummaries(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": res})
	}
}

// GetDocument returns a single document by ID.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

type generateJobDescriptionRequest struct {
	JobTitle string `json:"job_title"`
}

// GenerateJobDescription proxies job description generation to the
// completion provider.
func GenerateJobDescription(svc service.GenerationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req generateJobDescriptionRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		text, err := svc.GenerateJobDescription(c.UserContext(), req.JobTitle)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"job_description": text})
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; lifecycle rules live in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, genSvc service.GenerationService, pg config.PaginationConfig) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/documents", ListDocuments(docSvc, pg))
	app.Get("/documents/summaries", ListDocumentSummaries(docSvc))
	app.Post("/documents", CreateDocument(docSvc))
	app.Get("/documents/:id", GetDocument(docSvc))
	app.Put("/documents/:id", UpdateDocument(docSvc))
	app.Delete("/documents/:id", DeleteDocument(docSvc))
	app.Post("/documents/:id/signature", SignDocument(docSvc))

	app.Post("/generate/job-description", GenerateJobDescription(genSvc))
}
