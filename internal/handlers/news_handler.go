package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"shinaBack/internal/models"
	"shinaBack/internal/services"
	"shinaBack/utils"
)

const maxCoverSize = 10 << 20 // 10 MB

type NewsHandler struct {
	Service  *services.NewsService
	Uploader *utils.Uploader
}

func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	articles, err := h.Service.GetPublished(r.Context(), kind)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load news")
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (h *NewsHandler) GetNewsByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(r.URL.Query().Get(":id"))
	article, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			writeError(w, http.StatusNotFound, "article not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load article")
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// CreateNews accepts a multipart form with article fields and an optional
// cover image that is uploaded to object storage.
func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCoverSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	article := models.Article{
		Kind:      r.FormValue("kind"),
		Title:     r.FormValue("title"),
		Body:      r.FormValue("body"),
		Published: r.FormValue("published") == "true",
	}

	coverURL, err := h.uploadCover(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to upload cover")
		return
	}
	article.CoverURL = coverURL

	created, err := h.Service.Create(r.Context(), article)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *NewsHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCoverSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	id, _ := strconv.Atoi(r.URL.Query().Get(":id"))
	article := models.Article{
		ID:        id,
		Kind:      r.FormValue("kind"),
		Title:     r.FormValue("title"),
		Body:      r.FormValue("body"),
		Published: r.FormValue("published") == "true",
	}

	coverURL, err := h.uploadCover(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to upload cover")
		return
	}
	article.CoverURL = coverURL

	updated, err := h.Service.Update(r.Context(), article)
	if err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			writeError(w, http.StatusNotFound, "article not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update article")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *NewsHandler) uploadCover(r *http.Request) (string, error) {
	file, header, err := r.FormFile("cover")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxCoverSize))
	if err != nil {
		return "", err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	fileName := fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.NewString(), header.Filename)
	return h.Uploader.UploadFile(data, fileName, "news", contentType)
}
