package transfer

import (
	"context"
	"fmt"
	"time"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
	"sealbox/internal/protocol/hybrid"
)

// Service drives a single session against a conversion server.
type Service struct {
	client domain.ConvertClient
	sess   *domain.Session
}

// New binds a session to the client used for its network steps.
func New(client domain.ConvertClient, sess *domain.Session) *Service {
	return &Service{client: client, sess: sess}
}

// Session exposes the bound session, mainly for state inspection.
func (s *Service) Session() *domain.Session { return s.sess }

// FetchServerKey fetches the server's PEM key, imports it, and returns its
// fingerprint for trust-on-first-use display.
func (s *Service) FetchServerKey(ctx context.Context) (string, error) {
	var fingerprint string
	err := s.sess.Step(domain.StateIdle, domain.StateServerKeyFetched, func() error {
		pemBlob, err := s.client.FetchServerKey(ctx)
		if err != nil {
			return err
		}
		pub, err := crypto.ImportPublicPEM(pemBlob)
		if err != nil {
			return err
		}
		s.sess.ServerKeyPEM = pemBlob
		s.sess.ServerKey = pub
		fingerprint = crypto.FingerprintPublicKey(pub)
		return nil
	})
	return fingerprint, err
}

// GenerateKeys creates the session's own RSA keypair. The private half never
// leaves this process.
func (s *Service) GenerateKeys() error {
	return s.sess.Step(domain.StateServerKeyFetched, domain.StateOwnKeyGenerated, func() error {
		keys, err := crypto.GenerateKeyPair()
		if err != nil {
			return err
		}
		s.sess.Keys = &keys
		return nil
	})
}

// Register exports our public key and registers it under the session's
// client id.
func (s *Service) Register(ctx context.Context) error {
	return s.sess.Step(domain.StateOwnKeyGenerated, domain.StateKeyRegistered, func() error {
		if s.sess.Keys == nil {
			return fmt.Errorf("%w: no keypair on session", domain.ErrPrecondition)
		}
		pemBlob, err := crypto.ExportPublicPEM(s.sess.Keys.Public)
		if err != nil {
			return err
		}
		return s.client.RegisterClientKey(ctx, s.sess.ClientID, pemBlob)
	})
}

// EncryptAndUpload seals plaintext for the server under a fresh symmetric
// key, uploads it, and stores the server's encrypted result on the session.
func (s *Service) EncryptAndUpload(ctx context.Context, plaintext []byte, mediaType string) error {
	return s.sess.Step(domain.StateKeyRegistered, domain.StatePayloadEncrypted, func() error {
		if s.sess.ServerKey == nil {
			return fmt.Errorf("%w: no server key on session", domain.ErrPrecondition)
		}
		envelopeStr, wrappedKey, err := hybrid.EncryptForRecipient(s.sess.ServerKey, plaintext)
		if err != nil {
			return err
		}
		res, err := s.client.UploadEncrypted(ctx, s.sess.ClientID, wrappedKey, envelopeStr, mediaType)
		if err != nil {
			return err
		}
		s.sess.ResultEnvelope = res.EncryptedResult
		s.sess.ResultWrappedKey = res.EncryptedKey
		s.sess.ResultMediaType = res.MediaType
		return nil
	})
}

// DecryptResult opens the stored result with the session's private key and
// attaches a suggested filename and MIME type for the presentation layer.
func (s *Service) DecryptResult() (domain.Result, error) {
	var out domain.Result
	err := s.sess.Step(domain.StatePayloadEncrypted, domain.StateResultDecrypted, func() error {
		if s.sess.Keys == nil {
			return fmt.Errorf("%w: no keypair on session", domain.ErrPrecondition)
		}
		if s.sess.ResultEnvelope == "" || s.sess.ResultWrappedKey == "" {
			return fmt.Errorf("%w: no encrypted result on session", domain.ErrPrecondition)
		}
		plaintext, err := hybrid.DecryptAsOwner(s.sess.Keys.Private, s.sess.ResultEnvelope, s.sess.ResultWrappedKey)
		if err != nil {
			return err
		}
		ext := s.sess.ResultMediaType
		if ext == "" {
			ext = "bin"
		}
		out = domain.Result{
			Plaintext: plaintext,
			Filename:  fmt.Sprintf("result_%d.%s", time.Now().Unix(), ext),
			MIME:      mimeForExt(ext),
		}
		return nil
	})
	return out, err
}

func mimeForExt(ext string) string {
	switch ext {
	case "mp3":
		return "audio/mpeg"
	case "mp4":
		return "video/mp4"
	case "webm":
		return "video/webm"
	case "gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

// Compile-time assertion that Service implements domain.TransferService.
var _ domain.TransferService = (*Service)(nil)
