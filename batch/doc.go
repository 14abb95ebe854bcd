// Package batch runs query files through eve engines and writes the
// answer, statistics and run-log files.
//
// A Runner owns no engine between runs. Run builds one engine per worker
// over the shared read-only graph, splits the queries into contiguous
// shards and stores every outcome at its input index, so reports and
// output files keep the query-file order regardless of Workers.
//
// Invalid queries (endpoints outside the graph) are per-query failures:
// they are logged, counted in Report.Invalid and written as an empty
// answer. Engine construction errors and context cancellation abort the
// whole run.
//
// Every run gets a uuid run id, an OpenTelemetry span ("batch.Run") with
// one child span per shard, and rate-limited progress logging.
package batch
