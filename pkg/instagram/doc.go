// Package instagram fetches public Instagram profile pages and media.
//
// This package includes:
//   - A paced HTTP client with browser-like headers and bounded retry
//   - An extractor for the shared-data JSON blob embedded in profile pages
//   - Type-safe models for the parts of the blob this tool navigates
//   - Helpers for constructing page URLs and validating usernames
//
// Example usage:
//
//	client := instagram.NewClient(cfg, log)
//
//	blob, err := client.FetchSharedData(ctx, "username")
//	if err != nil {
//	    var typed *errors.Error
//	    if stderrors.As(err, &typed) {
//	        switch typed.Type {
//	        case errors.ErrorTypeNotFound:
//	            // account does not exist
//	        case errors.ErrorTypeRateLimit:
//	            // retries exhausted against 429 responses
//	        }
//	    }
//	}
//
// The design depends on the page embedding window._sharedData, a
// convention the site may remove at any time.
package instagram
