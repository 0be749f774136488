package main

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/coder/websocket"

	"github.com/Ko-stant/dungeon-bsp/internal/protocol"
	"github.com/Ko-stant/dungeon-bsp/internal/web/views"
	"github.com/Ko-stant/dungeon-bsp/internal/ws"
)

func newMux(h *TestableHandlers, hub *ws.Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/dungeon", h.ServeDungeon)
	mux.HandleFunc("/stream", h.ServeStream(hub))
	mux.HandleFunc("GET /{$}", h.ServeIndex)
	return mux
}

// parseGenerateQuery maps query parameters onto a RequestGenerate; absent parameters keep defaults.
func parseGenerateQuery(q url.Values) (protocol.RequestGenerate, error) {
	var req protocol.RequestGenerate
	ints := []struct {
		key string
		dst *int
	}{
		{"width", &req.Width},
		{"depth", &req.Depth},
		{"minRoomSize", &req.MinRoomSize},
	}
	for _, v := range ints {
		raw := q.Get(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, badRequest("%s: %v", v.key, err)
		}
		*v.dst = n
	}
	if raw := q.Get("maxDepth"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, badRequest("maxDepth: %v", err)
		}
		req.MaxDepth = &n
	}
	if raw := q.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, badRequest("seed: %v", err)
		}
		req.Seed = seed
	}
	req.Carve = q.Get("carve")
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *TestableHandlers) writeError(w http.ResponseWriter, err error) {
	reqErr := asRequestError(err)
	writeJSON(w, statusFor(reqErr), protocol.ErrorPatch{Code: reqErr.Code, Message: reqErr.Message})
}

// ServeDungeon answers GET /api/dungeon with a fresh snapshot. It does not replace the
// dungeon shown to stream viewers.
func (h *TestableHandlers) ServeDungeon(w http.ResponseWriter, r *http.Request) {
	req, err := parseGenerateQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, err)
		return
	}
	snapshot, err := h.Generate(req)
	if err != nil {
		h.logger.Printf("api generate failed: %v", err)
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *TestableHandlers) ServeIndex(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.Current()
	if !ok {
		var err error
		snapshot, err = h.HandleRequestGenerate(protocol.RequestGenerate{Seed: h.defaults.Seed})
		if err != nil {
			h.writeError(w, err)
			return
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.IndexPage(snapshot).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ServeStream greets each viewer with the current dungeon, then treats every inbound
// message as an intent. Errors go back to the sender only.
func (h *TestableHandlers) ServeStream(hub *ws.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			h.logger.Printf("stream accept failed: %v", err)
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "")
		hub.Add(conn)
		defer hub.Remove(conn)

		ctx := r.Context()
		if snapshot, ok := h.Current(); ok {
			hello := protocol.PatchEnvelope{
				Sequence: 0,
				Type:     protocol.PatchDungeonGenerated,
				Payload:  protocol.DungeonGenerated{Snapshot: snapshot},
			}
			if err := ws.Send(ctx, conn, hello); err != nil {
				return
			}
		}

		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			if err := h.HandleIntent(data); err != nil {
				patch := protocol.PatchEnvelope{Type: protocol.PatchError, Payload: errorPatch(err)}
				if err := ws.Send(ctx, conn, patch); err != nil {
					return
				}
			}
		}
	}
}
