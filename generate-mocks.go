//go:generate moq -out mock_kvclient_test.go . KvClient ReefdxDispatcherCloser
//go:generate moq -out mock_kvendpoint_test.go . KvEndpoint
//go:generate moq -out mock_retrymanager_test.go . RetryManager RetryController

package goreefcore
