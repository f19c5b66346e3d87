package httpserver

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_pricing/internal/app"
	"hotel_pricing/internal/domain"
)

const maxBodyBytes = 1 << 20

type Handlers struct{ Q *app.QuoteService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/rooms", h.listRooms)
		r.Get("/rooms/{id}", h.getRoom)
		r.Get("/areas", h.listAreas)
		r.Get("/areas/{id}", h.getArea)

		r.Post("/quotes/rooms", h.quoteRoom)
		r.Post("/quotes/areas", h.quoteArea)
	})
}

// ---- request bodies ----

type roomQuoteBody struct {
	RoomID int64         `json:"room_id"`
	Room   *domain.Room  `json:"room"`
	Guest  *domain.Guest `json:"guest"`
	Nights int           `json:"nights"`
}

type areaQuoteBody struct {
	AreaID int64         `json:"area_id"`
	Area   *domain.Area  `json:"area"`
	Guest  *domain.Guest `json:"guest"`
	Hours  *int          `json:"hours"` // omitted means a single hour
}

// ---- catalog ----

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	pg, ok := pageQuery(w, r)
	if !ok {
		return
	}
	out, err := h.Q.ListRooms(r.Context(), pg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) listAreas(w http.ResponseWriter, r *http.Request) {
	pg, ok := pageQuery(w, r)
	if !ok {
		return
	}
	out, err := h.Q.ListAreas(r.Context(), pg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	room, err := h.Q.GetRoom(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, room)
}

func (h *Handlers) getArea(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	area, err := h.Q.GetArea(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCached(w, r, area)
}

// ---- quotes ----

func (h *Handlers) quoteRoom(w http.ResponseWriter, r *http.Request) {
	var body roomQuoteBody
	if !decodeBody(w, r, &body) {
		return
	}
	q, err := h.Q.QuoteRoom(r.Context(), domain.RoomQuoteRequest{
		RoomID: body.RoomID,
		Room:   body.Room,
		Guest:  body.Guest,
		Nights: body.Nights,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handlers) quoteArea(w http.ResponseWriter, r *http.Request) {
	var body areaQuoteBody
	if !decodeBody(w, r, &body) {
		return
	}
	hours := 1
	if body.Hours != nil {
		hours = *body.Hours
	}
	q, err := h.Q.QuoteArea(r.Context(), domain.AreaQuoteRequest{
		AreaID: body.AreaID,
		Area:   body.Area,
		Guest:  body.Guest,
		Hours:  hours,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// ---- helpers ----

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return 0, false
	}
	return id, true
}

func pageQuery(w http.ResponseWriter, r *http.Request) (domain.PageQuery, bool) {
	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return domain.PageQuery{}, false
		}
		limit = l
	}
	return domain.PageQuery{Limit: limit}, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		detail := "request body must be a JSON object"
		if errors.Is(err, io.EOF) {
			detail = "request body is empty"
		}
		writeProblem(w, http.StatusBadRequest, "Malformed request", detail)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingEntity), errors.Is(err, domain.ErrInvalidDuration):
		writeProblem(w, http.StatusBadRequest, "Invalid quote request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeJSON encodes before touching the status line so an unencodable value
// (a non-finite total, say) still gets a proper 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode JSON response failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "response could not be encoded")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

// writeCached answers 304 when the client already holds this representation.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	w.Header().Set("ETag", etag)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}
