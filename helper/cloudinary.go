package helper

import (
	"net/url"
	"strconv"
	"time"

	"wedding_manager/config"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/gosimple/slug"
)

// UploadSignature is everything the front-end needs for a signed direct
// upload of a gift image to Cloudinary.
type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	Folder    string `json:"folder"`
	PublicID  string `json:"public_id"`
	APIKey    string `json:"api_key"`
	CloudName string `json:"cloud_name"`
}

// SignGiftUpload signs the upload params for a gift image. The public id is
// derived from the gift title so the asset is findable in the media library.
func SignGiftUpload(title string) (UploadSignature, error) {
	timestamp := time.Now().Unix()
	publicID := slug.Make(title)

	params := url.Values{}
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))
	params.Set("folder", "gifts")
	if publicID != "" {
		params.Set("public_id", publicID)
	}

	signature, err := api.SignParameters(params, config.Config("CLOUDINARY_API_SECRET"))
	if err != nil {
		return UploadSignature{}, err
	}

	return UploadSignature{
		Signature: signature,
		Timestamp: timestamp,
		Folder:    "gifts",
		PublicID:  publicID,
		APIKey:    config.Config("CLOUDINARY_API_KEY"),
		CloudName: config.Config("CLOUDINARY_CLOUD_NAME"),
	}, nil
}
