package fakes

// Multiple go:generate directives instead of counterfeiter:generate due to https://github.com/maxbrunsfeld/counterfeiter/issues/254
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_config_db.go ./db ConfigDB
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_event_db.go ./db EventDB
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_status_history_db.go ./db StatusHistoryDB
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_lock_db.go ./db LockDB
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_database_status.go ./healthendpoint DatabaseStatus
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_event_sink.go ./bam/graph EventSink
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_reloader.go ./bam/broker Reloader
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_history_querier.go ./bam/rebuild HistoryQuerier
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_rebuild_requester.go ./bam/server RebuildRequester
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_publisher.go ./bam/server Publisher
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_operator.go ./operator Operator
