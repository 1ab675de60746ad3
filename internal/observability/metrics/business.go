package metrics

// RecordMutation records the result of a create, update or delete.
func RecordMutation(resource, action string, success bool) {
	MutationsTotal.WithLabelValues(resource, action, result(success)).Inc()
}

// RecordListFetch records the result of a list controller fetch.
func RecordListFetch(list string, success bool) {
	ListFetchesTotal.WithLabelValues(list, result(success)).Inc()
}

// RecordStaleResponse records a list response dropped for being older than the applied one.
func RecordStaleResponse(list string) {
	ListStaleResponsesTotal.WithLabelValues(list).Inc()
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
