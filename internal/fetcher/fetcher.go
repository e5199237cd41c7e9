package fetcher

import (
	"context"

	"github.com/sitesig/sitesig/pkg/failure"
	"github.com/sitesig/sitesig/pkg/retry"
)

type Fetcher interface {
	Fetch(
		ctx context.Context,
		fetchParam FetchParam,
		retryParam retry.RetryParam,
	) (FetchResult, failure.ClassifiedError)
}
