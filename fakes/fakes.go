package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_config_db.go ../db ConfigDB
//counterfeiter:generate -o ./fake_event_db.go ../db EventDB
//counterfeiter:generate -o ./fake_status_history_db.go ../db StatusHistoryDB
//counterfeiter:generate -o ./fake_lock_db.go ../db LockDB
//counterfeiter:generate -o ./fake_database_status.go ../healthendpoint DatabaseStatus
//counterfeiter:generate -o ./fake_event_sink.go ../bam/graph EventSink
//counterfeiter:generate -o ./fake_reloader.go ../bam/broker Reloader
//counterfeiter:generate -o ./fake_history_querier.go ../bam/rebuild HistoryQuerier
//counterfeiter:generate -o ./fake_rebuild_requester.go ../bam/server RebuildRequester
//counterfeiter:generate -o ./fake_publisher.go ../bam/server Publisher
//counterfeiter:generate -o ./fake_operator.go ../operator Operator
