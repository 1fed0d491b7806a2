package placeid

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sfomuseum/go-streetview/placeid"
)

type extractRequest struct {
	URL string `json:"url"`
}

func runLambda(ctx context.Context) error {

	handler := func(ctx context.Context, req *extractRequest) (*placeid.Result, error) {
		return placeid.ExtractFromURL(req.URL), nil
	}

	lambda.Start(handler)
	return nil
}
