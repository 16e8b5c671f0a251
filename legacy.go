package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"connectrpc.com/connect"
	"github.com/samber/lo"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	v1 "github.com/safestride/routing/api/saferoute/v1"
)

// httpStatus follows the connect protocol's code to HTTP status table.
func httpStatus(code connect.Code) int {
	switch code {
	case connect.CodeInvalidArgument, connect.CodeFailedPrecondition, connect.CodeOutOfRange:
		return http.StatusBadRequest
	case connect.CodeNotFound:
		return http.StatusNotFound
	case connect.CodeUnavailable:
		return http.StatusServiceUnavailable
	case connect.CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case connect.CodeUnimplemented:
		return http.StatusNotImplemented
	case connect.CodeCanceled:
		return 499
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Debugf("write response: %v", err)
	}
}

var legacyJSON = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

func writeProto(w http.ResponseWriter, status int, m proto.Message) {
	data, err := legacyJSON.Marshal(m)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		log.Debugf("write response: %v", err)
	}
}

// legacyCrime is the row shape of the /crimes endpoint.
type legacyCrime struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Category string  `json:"category"`
}

func writeError(w http.ResponseWriter, err error) {
	msg := err.Error()
	var ce *connect.Error
	if errors.As(err, &ce) {
		msg = ce.Message()
	}
	writeJSON(w, httpStatus(connect.CodeOf(err)), map[string]string{"error": msg})
}

// legacyHandler serves plain GET endpoints for clients that do not speak
// connect: /safe_path?start_lat=&start_lon=&destination= and /crimes.
func legacyHandler(s *SafeRouteServer) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /safe_path", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		lat, latErr := strconv.ParseFloat(q.Get("start_lat"), 64)
		lon, lonErr := strconv.ParseFloat(q.Get("start_lon"), 64)
		destination := q.Get("destination")
		if latErr != nil || lonErr != nil || destination == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing parameters"})
			return
		}
		res, err := s.GetSafeRoute(r.Context(), connect.NewRequest(&v1.GetSafeRouteRequest{
			Origin:      &v1.LatLng{Lat: lat, Lon: lon},
			Destination: destination,
		}))
		if err != nil {
			if connect.CodeOf(err) == connect.CodeNotFound {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "Destination not found"})
				return
			}
			writeError(w, err)
			return
		}
		coords := make([][2]float64, len(res.Msg.Route))
		for i, p := range res.Msg.Route {
			coords[i] = [2]float64{p.Lat, p.Lon}
		}
		writeJSON(w, http.StatusOK, map[string]any{"route": coords})
	})
	mux.HandleFunc("GET /crimes", func(w http.ResponseWriter, r *http.Request) {
		res, err := s.ListCrimes(r.Context(), connect.NewRequest(&v1.ListCrimesRequest{}))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, lo.Map(res.Msg.Crimes, func(c *v1.Crime, _ int) legacyCrime {
			return legacyCrime{Lat: c.Lat, Lon: c.Lon, Category: c.Category}
		}))
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		res, err := s.Health(r.Context(), connect.NewRequest(&v1.HealthRequest{}))
		if err != nil {
			writeError(w, err)
			return
		}
		writeProto(w, http.StatusOK, res.Msg)
	})
	return mux
}
