// Package acl is the boundary between the service and the FavQs quotes API.
//
// Two layers live here:
//
//   - [RequestClient] attaches the API token to every request, performs a
//     single GET, and turns non-2xx answers into [domain.RequestError]. A
//     missing token is reported as [domain.ConfigurationError] before any
//     network call is made.
//   - [QuoteClient] names the two API operations the service uses,
//     FetchQuotesPage and FetchQotd, and implements ports.QuoteSource.
//
// Response bodies are decoded into the opaque domain.QuotePage and
// domain.QuoteOfTheDay maps without reshaping: the API's JSON is the model.
//
// # Error Handling Strategy
//
//   - Missing token → [domain.ErrConfiguration] ("FAVQS_TOKEN is not set")
//   - Any non-2xx status → [domain.ErrRequest] ("HTTP 404: Not Found")
//   - Transport and decode failures are wrapped and returned as they are
//
// Nothing is retried and nothing is cached.
package acl
