package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aleister1102/rtfcompare/internal/common"
	"github.com/aleister1102/rtfcompare/internal/comparer"
	"github.com/aleister1102/rtfcompare/internal/differ"
	"github.com/aleister1102/rtfcompare/internal/extractor"
	"github.com/aleister1102/rtfcompare/internal/session"
	"github.com/google/uuid"
)

const sessionCookieName = "rtfcompare_session"

// indexPageData is the data model for the upload page template
type indexPageData struct {
	ErrorMessage string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexPageData{ErrorMessage: r.URL.Query().Get("error")}
	if err := s.templates.ExecuteTemplate(w, "index.html.tmpl", data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to render index page")
	}
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxUpload := int64(s.cfg.MaxUploadSizeMB) * 1024 * 1024
	// Headroom for the multipart framing and form fields on top of the
	// per-file limit times the file count
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload*int64(s.cfg.MaxComparisonFiles+2))

	if err := r.ParseMultipartForm(maxUpload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.redirectWithError(w, r, fmt.Sprintf("File too large. Maximum size is %dMB per file.", s.cfg.MaxUploadSizeMB))
			return
		}
		s.redirectWithError(w, r, "Failed to parse upload")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	opts := s.parseOptions(r)

	source, err := s.readUploadedFile(r, "source_file", maxUpload)
	if err != nil {
		s.redirectWithError(w, r, "Source/Reference file is required")
		return
	}
	if err := extractor.ValidateDocument(source.Filename, source.Content); err != nil {
		s.redirectWithError(w, r, fmt.Sprintf("Source file error: %v", err))
		return
	}

	comparisons, errMsg := s.readComparisonFiles(r, maxUpload)
	if errMsg != "" {
		s.redirectWithError(w, r, errMsg)
		return
	}

	sessionID := s.ensureSession(w, r)

	if err := s.persistUploads(sessionID, source, comparisons); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to persist uploads to session directory")
	}

	batch, err := s.comparer.CompareAll(source, comparisons, opts)
	if err != nil {
		if errors.Is(err, common.ErrContentTooLarge) {
			s.redirectWithError(w, r, "Input too large for diffing. Reduce document size and try again.")
			return
		}
		s.logger.Error().Err(err).Msg("Comparison batch failed")
		s.redirectWithError(w, r, fmt.Sprintf("Error processing files: %v", err))
		return
	}

	s.store.Put(sessionID, batch)
	http.Redirect(w, r, "/results", http.StatusSeeOther)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	batch, err := s.currentBatch(r)
	if err != nil {
		s.redirectWithError(w, r, "No comparison results found. Please upload files first.")
		return
	}

	if err := s.templates.ExecuteTemplate(w, "results.html.tmpl", batch); err != nil {
		s.logger.Error().Err(err).Msg("Failed to render results page")
	}
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	batch, err := s.currentBatch(r)
	if err != nil {
		s.redirectWithError(w, r, "No comparison results found. Please upload files first.")
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 || index >= len(batch.Results) {
		s.redirectWithError(w, r, "Invalid file index")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, batch.Results[index].HTML)
}

func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	batch, err := s.currentBatch(r)
	if err != nil {
		s.redirectWithError(w, r, "No comparison results found. Please upload files first.")
		return
	}

	report, err := s.reportBuilder.Build(batch.SourceFilename, batch.Results, batch.Timestamp)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to build consolidated report")
		http.Error(w, "failed to build report", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("rtf_comparison_report_%s.html", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = io.WriteString(w, report)
}

func (s *Server) handleDownloadCSV(w http.ResponseWriter, r *http.Request) {
	batch, err := s.currentBatch(r)
	if err != nil {
		s.redirectWithError(w, r, "No comparison results found. Please upload files first.")
		return
	}

	filename := fmt.Sprintf("rtf_comparison_summary_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := s.csvExporter.Write(w, batch.SourceFilename, batch.Results, batch.Timestamp); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write CSV summary")
	}
}

// parseOptions reads the comparison options from the upload form.
// Unchecked checkboxes are absent from the POST, so presence means on.
func (s *Server) parseOptions(r *http.Request) comparer.Options {
	formOn := func(field string) bool {
		return r.FormValue(field) == "on"
	}

	return comparer.Options{
		Granularity:         differ.ParseGranularity(r.FormValue("diff_granularity")),
		IgnoreCase:          formOn("ignore_case"),
		IgnorePunctuation:   formOn("ignore_punctuation"),
		IgnoreBoilerplate:   formOn("ignore_boilerplate"),
		NormalizeWhitespace: formOn("normalize_whitespace"),
	}
}

// readUploadedFile reads one named upload into memory
func (s *Server) readUploadedFile(r *http.Request, field string, maxSize int64) (comparer.Document, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return comparer.Document{}, err
	}
	defer file.Close()

	if header.Filename == "" {
		return comparer.Document{}, common.NewValidationError(field, header.Filename, "filename cannot be empty")
	}

	content, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return comparer.Document{}, common.WrapError(err, "failed to read uploaded file")
	}
	if int64(len(content)) > maxSize {
		return comparer.Document{}, common.WrapErrorf(common.ErrContentTooLarge, "file '%s' exceeds %d bytes", header.Filename, maxSize)
	}

	return comparer.Document{
		Filename: session.SanitizeFilename(header.Filename),
		Content:  content,
	}, nil
}

// readComparisonFiles reads and validates all comparison uploads, returning
// a user-presentable error message on failure
func (s *Server) readComparisonFiles(r *http.Request, maxSize int64) ([]comparer.Document, string) {
	if r.MultipartForm == nil {
		return nil, "At least one comparison file is required"
	}

	headers := r.MultipartForm.File["comparison_files"]
	if len(headers) == 0 {
		return nil, "At least one comparison file is required"
	}
	if len(headers) > s.cfg.MaxComparisonFiles {
		return nil, fmt.Sprintf("Maximum %d comparison files allowed", s.cfg.MaxComparisonFiles)
	}

	var comparisons []comparer.Document
	for _, header := range headers {
		if header.Filename == "" {
			continue
		}

		doc, err := s.readMultipartFile(header, maxSize)
		if err != nil {
			return nil, fmt.Sprintf("Comparison file %q error: %v", header.Filename, err)
		}

		if err := extractor.ValidateDocument(doc.Filename, doc.Content); err != nil {
			return nil, fmt.Sprintf("Comparison file %q error: %v", doc.Filename, err)
		}

		comparisons = append(comparisons, doc)
	}

	if len(comparisons) == 0 {
		return nil, "No valid comparison files found"
	}
	return comparisons, ""
}

func (s *Server) readMultipartFile(header *multipart.FileHeader, maxSize int64) (comparer.Document, error) {
	file, err := header.Open()
	if err != nil {
		return comparer.Document{}, common.WrapError(err, "failed to open upload")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return comparer.Document{}, common.WrapError(err, "failed to read upload")
	}
	if int64(len(content)) > maxSize {
		return comparer.Document{}, common.WrapErrorf(common.ErrContentTooLarge, "file exceeds %d bytes", maxSize)
	}

	return comparer.Document{
		Filename: session.SanitizeFilename(header.Filename),
		Content:  content,
	}, nil
}

// persistUploads writes the uploaded documents into the transient session
// directory so the working area mirrors what was compared
func (s *Server) persistUploads(sessionID string, source comparer.Document, comparisons []comparer.Document) error {
	dir, err := s.sessions.SessionDir(sessionID)
	if err != nil {
		return err
	}

	files := map[string][]byte{"source_" + source.Filename: source.Content}
	for _, doc := range comparisons {
		files["comp_"+doc.Filename] = doc.Content
	}

	fm := common.NewFileManager(s.logger)
	for name, content := range files {
		if err := fm.WriteFile(dir+"/"+name, content, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// ensureSession returns the session ID from the request cookie, creating a
// new session when none exists
func (s *Server) ensureSession(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
			return cookie.Value
		}
	}

	sessionID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID
}

// currentBatch resolves the stored batch result for the request's session
func (s *Server) currentBatch(r *http.Request) (*comparer.BatchResult, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, common.WrapError(common.ErrNotFound, "no session cookie")
	}

	batch, ok := s.store.Get(cookie.Value)
	if !ok {
		return nil, common.WrapError(common.ErrNotFound, "no results for session")
	}
	return batch, nil
}

func (s *Server) redirectWithError(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/?error="+url.QueryEscape(message), http.StatusSeeOther)
}
