// Package rightnow provides a client for the RightNow Community (HiveLive) API.
//
// Every call targets a single endpoint and is authenticated by a signature:
// the Action, ApiKey, PermissionedAs, SignatureVersion and version parameters
// are sorted by case-insensitive key, concatenated as key+value, and signed
// with HMAC-SHA1 using the secret key. Action-specific parameters are sent
// alongside but are not part of the signed string.
//
// # Usage
//
//	client, err := rightnow.NewClient(
//		"https://community.example.com",
//		rightnow.WithCredentials("api-key", "secret-key"),
//		rightnow.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	posts, err := client.Search(ctx, rightnow.Params{"term": "white", "page": 2})
//
//	// Several posts are fetched in parallel; results keep the input order.
//	full, err := client.PostGetMany(ctx, []rightnow.PostRef{
//		rightnow.PostHash("fa8e6cc713"),
//		rightnow.PostEntity(posts[0]),
//	})
//
//	// Act on behalf of another member.
//	comment, err := client.CommentAdd(ctx, "fa8e6cc713", "+1", rightnow.As("someone@example.com"))
//
// # Error Handling
//
//   - JSONParseError: the response body is not a JSON object or array
//   - APIError: the API reported an error, or answered non-200 without details
//   - MissingFieldError: a successful response lacks the expected key
//
// Batch lookups wait for every request to finish, then report the first
// failure in input order. There are no retries.
package rightnow
