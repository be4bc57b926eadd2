// Package retry retries transient failures when downloading remote BEACON
// dumps.
//
// # Example Usage
//
//	executor := retry.NewExecutor(
//	    retry.NewHTTPErrorClassifier(),
//	    retry.NewExponentialBackoff(2),
//	)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return download(ctx)
//	})
//
// # Error Classification
//
// An ErrorClassifier decides whether an error is worth another attempt.
// HTTPErrorClassifier treats 5xx, 408 and 429 responses, timeouts and
// connection failures as transient. Every other HTTP status is fatal.
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. WithOnRetry returns a
// copy and never modifies the receiver.
package retry
