package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
	"sealbox/internal/protocol/hybrid"
)

// Server holds the conversion server's state: its keypair (generated at
// startup, memory only), the client key registry, and the converter.
type Server struct {
	log      *logrus.Logger
	keys     domain.KeyPair
	registry *Registry
	conv     Converter
}

// New generates the server keypair and assembles a server around registry
// and conv. A nil log falls back to the logrus standard logger.
func New(log *logrus.Logger, registry *Registry, conv Converter) (*Server, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	keys, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	log.WithField("fingerprint", crypto.FingerprintPublicKey(keys.Public)).
		Info("generated server keypair")
	return &Server{log: log, keys: keys, registry: registry, conv: conv}, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /public-key", s.handlePublicKey)
	mux.HandleFunc("POST /client-public-key", s.handleClientKey)
	mux.HandleFunc("POST /upload-encrypted", s.handleUpload)
	return mux
}

func (s *Server) handlePublicKey(w http.ResponseWriter, r *http.Request) {
	pemBlob, err := crypto.ExportPublicPEM(s.keys.Public)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "exporting public key failed")
		return
	}
	s.writeJSON(w, map[string]string{"serverPublicKey": pemBlob})
}

func (s *Server) handleClientKey(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req struct {
		ClientID     string `json:"clientId"`
		PublicKeyPEM string `json:"publicKeyPem"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ClientID == "" {
		s.writeError(w, http.StatusBadRequest, "no clientId provided")
		return
	}
	if req.PublicKeyPEM == "" {
		s.writeError(w, http.StatusBadRequest, "no public key provided")
		return
	}
	pub, err := crypto.ImportPublicPEM(req.PublicKeyPEM)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to load public key: "+err.Error())
		return
	}
	if err := s.registry.Put(domain.ClientID(req.ClientID), req.PublicKeyPEM, pub); err != nil {
		s.log.WithError(err).Error("persisting client key")
		s.writeError(w, http.StatusInternalServerError, "storing public key failed")
		return
	}
	s.log.WithFields(logrus.Fields{
		"clientId":    req.ClientID,
		"fingerprint": crypto.FingerprintPublicKey(pub),
	}).Info("registered client key")
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req struct {
		ClientID      string `json:"clientId"`
		EncryptedKey  string `json:"encryptedKey"`
		EncryptedData string `json:"encryptedData"`
		MediaType     string `json:"mediaType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	clientID := domain.ClientID(req.ClientID)
	clientPub, ok := s.registry.Get(clientID)
	if !ok {
		s.writeError(w, http.StatusNotFound,
			"clientId '"+req.ClientID+"' not recognized. Please POST /client-public-key first.")
		return
	}

	plaintext, err := hybrid.DecryptAsOwner(s.keys.Private, req.EncryptedData, req.EncryptedKey)
	if err != nil {
		s.log.WithError(err).WithField("clientId", req.ClientID).Warn("rejecting upload")
		switch {
		case errors.Is(err, domain.ErrDecryption):
			s.writeError(w, http.StatusBadRequest, "decryption of key failed")
		case errors.Is(err, domain.ErrAuthentication):
			s.writeError(w, http.StatusBadRequest, "payload decryption failed")
		default:
			s.writeError(w, http.StatusBadRequest, "parsing encrypted data failed")
		}
		return
	}

	converted, outType, err := s.conv.Convert(r.Context(), plaintext, req.MediaType)
	if err != nil {
		s.log.WithError(err).Error("conversion failed")
		s.writeError(w, http.StatusInternalServerError, "processing error")
		return
	}

	// Fresh key for the response, wrapped to the client's registered key.
	resultEnvelope, resultKey, err := hybrid.EncryptForRecipient(clientPub, converted)
	if err != nil {
		s.log.WithError(err).Error("encrypting result")
		s.writeError(w, http.StatusInternalServerError, "encrypting result failed")
		return
	}

	s.log.WithFields(logrus.Fields{
		"clientId": req.ClientID,
		"inBytes":  len(plaintext),
		"outBytes": len(converted),
		"outType":  outType,
	}).Info("converted upload")

	s.writeJSON(w, map[string]string{
		"status":          "ok",
		"encryptedKey":    resultKey,
		"encryptedResult": resultEnvelope,
		"mediaType":       outType,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("writing response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
