package metrics

const (
	namespaceSequence = "sequence"

	subsystemRandomSource = "random_source"
)

const (
	LabelSource = "source"
)

const (
	SourceChacha20 = "chacha20"
	SourceSystem   = "system"
)
