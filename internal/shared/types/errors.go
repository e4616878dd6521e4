package types

import "errors"

var (
	ErrEstimateSectionNotFound = errors.New("'Estimativa detalhada' or 'Detailed Estimate' section not found in the CSV file")
	ErrMissingRequiredColumns  = errors.New("required columns missing. Check that the CSV was exported from the AWS Pricing Calculator")
)
