package types

type MarkAllReadResponse struct {
	Marked int64 `json:"marked"`
}

type UnreadCountResponse struct {
	Count uint64 `json:"count"`
}
