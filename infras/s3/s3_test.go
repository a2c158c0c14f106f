package s3

import (
	"testing"

	"github.com/GioMjds/paynal-prajik/config"

	"github.com/stretchr/testify/assert"
)

func TestGetObjectNameFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "hotel"
	cfg.External.S3.APIEndpoint = "https://storage.example.com/"
	cfg.External.S3.PublicDomain = "https://cdn.example.com"

	svc := &s3Impl{config: cfg}

	assert.Equal(t, "room/deluxe.png", svc.GetObjectNameFromURL("", "https://cdn.example.com/room/deluxe.png"))
	assert.Equal(t, "booking/id.jpg", svc.GetObjectNameFromURL("", "https://storage.example.com/hotel/booking/id.jpg"))
	assert.Empty(t, svc.GetObjectNameFromURL("", "https://elsewhere.example.com/room/deluxe.png"))
}

func TestPublicBase(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.APIEndpoint = "https://storage.example.com"

	svc := &s3Impl{config: cfg}
	assert.Equal(t, "https://storage.example.com/hotel", svc.publicBase("hotel"))

	cfg.External.S3.PublicDomain = "https://cdn.example.com/"
	assert.Equal(t, "https://cdn.example.com", svc.publicBase("hotel"))
}
