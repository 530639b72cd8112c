package awsec2

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// IsNotFound checks if an error indicates the resource no longer exists.
// EC2 reports these with per-resource codes such as
// InvalidVpcID.NotFound or InvalidGroup.NotFound. A not-found on delete
// means the work is already done, so callers treat it as success.
func IsNotFound(err error) bool {
	return strings.HasSuffix(errorCode(err), ".NotFound")
}

// IsDependencyViolation checks if an error indicates the resource is
// still referenced by something outside the teardown set (for example
// an EC2 instance inside a subnet). These errors are fatal for the
// region and must not be retried.
func IsDependencyViolation(err error) bool {
	return isErrorCode(err,
		"DependencyViolation",
		"ResourceInUse",
	)
}

// IsRateLimited checks if an error indicates API throttling. The SDK's
// retryer absorbs these before they surface here; the check exists for
// callers that want to report them distinctly.
func IsRateLimited(err error) bool {
	return isErrorCode(err,
		"RequestLimitExceeded",
		"Throttling",
		"ThrottlingException",
	)
}

// errorCode extracts the API error code, or "" for non-API errors.
func errorCode(err error) string {
	if err == nil {
		return ""
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// isErrorCode checks if the error is an EC2 API error with one of the
// given codes.
func isErrorCode(err error, codes ...string) bool {
	code := errorCode(err)
	if code == "" {
		return false
	}
	for _, c := range codes {
		if code == c {
			return true
		}
	}
	return false
}
