package protocol

const (
	PatchDungeonGenerated = "DungeonGenerated"
	PatchError            = "Error"
)

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type DungeonGenerated struct {
	Snapshot Snapshot `json:"snapshot"`
}

type ErrorPatch struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
