package bundle

import (
	"github.com/spacemonkeygo/errors"

	"yuisekin.net/fisca/def"
)

// grouping, do not instantiate
var Error *errors.ErrorClass = def.ConfigError.NewClass("BundleError")

/*
	Raised if S3 credentials are not available in the environment when a
	`s3://` rules URI is configured.
*/
var CredentialsMissingError *errors.ErrorClass = Error.NewClass("BundleCredentialsMissingError")

/*
	Grouping for errors encountered while actually fetching or unpacking
	a bundle (network trouble, truncated tars, and friends).
*/
var FetchError *errors.ErrorClass = Error.NewClass("BundleFetchError")
