package uploadauth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ImageKitSigner issues upload-auth parameters for ImageKit-compatible
// CDNs: a one-time token, a unix expiry and an HMAC-SHA1 signature over
// token+expire keyed with the account's private key.
type ImageKitSigner struct {
	PublicKey  string
	PrivateKey string
	Endpoint   string
	TTL        time.Duration
}

func (s *ImageKitSigner) Sign() (*Credentials, error) {
	if s.PrivateKey == "" {
		return nil, errors.New("imagekit private key not configured")
	}

	token := uuid.New().String()
	expire := time.Now().Add(s.TTL).Unix()

	mac := hmac.New(sha1.New, []byte(s.PrivateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return &Credentials{
		Token:       token,
		Expire:      expire,
		Signature:   hex.EncodeToString(mac.Sum(nil)),
		PublicKey:   s.PublicKey,
		URLEndpoint: s.Endpoint,
	}, nil
}
