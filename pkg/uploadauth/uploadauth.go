package uploadauth

import (
	"fmt"

	"github.com/AnilYadav17/videoHub/cmd/config"
)

// Credentials are short-lived parameters the browser uses to upload media
// directly to the CDN. The server never proxies file bytes; it only signs.
// Fields are provider specific: token/signature for ImageKit-compatible
// services, uploadUrl/key for presigned S3 PUTs.
type Credentials struct {
	Token       string `json:"token,omitempty"`
	Expire      int64  `json:"expire"`
	Signature   string `json:"signature,omitempty"`
	PublicKey   string `json:"publicKey,omitempty"`
	URLEndpoint string `json:"urlEndpoint,omitempty"`
	UploadURL   string `json:"uploadUrl,omitempty"`
	Key         string `json:"key,omitempty"`
}

type Signer interface {
	Sign() (*Credentials, error)
}

// FromConfig picks the upload credential provider configured at startup.
func FromConfig() (Signer, error) {
	switch config.UploadProvider {
	case "imagekit":
		return &ImageKitSigner{
			PublicKey:  config.ImageKitPublicKey,
			PrivateKey: config.ImageKitPrivateKey,
			Endpoint:   config.ImageKitURLEndpoint,
			TTL:        config.ImageKitTokenTTL,
		}, nil
	case "s3":
		return &S3Signer{
			Region: config.AWSRegion,
			Bucket: config.S3Bucket,
			TTL:    config.S3URLTTL,
		}, nil
	default:
		return nil, fmt.Errorf("unknown upload provider %q", config.UploadProvider)
	}
}
