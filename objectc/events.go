package objectc

// Event identifies one slot in the fixed per-object event table.
type Event int

const (
	EventCreate Event = iota
	EventDestroy
	EventInitialize
	EventFrameStart
	EventFrameEnd
	EventUpdate
	EventUpdateCustom
	EventUpdateGUI
	EventRender
	EventRenderCustom
	EventRenderGUI
	EventCustom
	EventPrepare
	EventTest
	EventSleep
	EventWake
	EventFlag
	EventPartition
	EventNetworkSend
	EventNetworkReceive

	EventCount
)

var eventNames = [EventCount]string{
	EventCreate:         "CREATE",
	EventDestroy:        "DESTROY",
	EventInitialize:     "INITIALIZE",
	EventFrameStart:     "FRAME_START",
	EventFrameEnd:       "FRAME_END",
	EventUpdate:         "UPDATE",
	EventUpdateCustom:   "UPDATE_CUSTOM",
	EventUpdateGUI:      "UPDATE_GUI",
	EventRender:         "RENDER",
	EventRenderCustom:   "RENDER_CUSTOM",
	EventRenderGUI:      "RENDER_GUI",
	EventCustom:         "CUSTOM",
	EventPrepare:        "PREPARE",
	EventTest:           "TEST",
	EventSleep:          "SLEEP",
	EventWake:           "WAKE",
	EventFlag:           "FLAG",
	EventPartition:      "PARTITION",
	EventNetworkSend:    "NETWORK_SEND",
	EventNetworkReceive: "NETWORK_RECEIVE",
}

// eventSignature is the fixed return type, parameter list, and
// call-argument list for one event
type eventSignature struct {
	returnType string
	params     string // declaration-site parameter list, e.g. "float delta"
	callArgs   string // call-site argument list, e.g. "delta"
}

var eventSignatures = [EventCount]eventSignature{
	EventCreate:         {"void", "", ""},
	EventDestroy:        {"void", "", ""},
	EventInitialize:     {"void", "", ""},
	EventFrameStart:     {"void", "float delta", "delta"},
	EventFrameEnd:       {"void", "float delta", "delta"},
	EventUpdate:         {"void", "float delta", "delta"},
	EventUpdateCustom:   {"void", "float delta", "delta"},
	EventUpdateGUI:      {"void", "float delta", "delta"},
	EventRender:         {"void", "RenderContext& ctx", "ctx"},
	EventRenderCustom:   {"void", "RenderContext& ctx", "ctx"},
	EventRenderGUI:      {"void", "RenderContext& ctx", "ctx"},
	EventCustom:         {"void", "", ""},
	EventPrepare:        {"void", "", ""},
	EventTest:           {"bool", "", ""},
	EventSleep:          {"void", "", ""},
	EventWake:           {"void", "", ""},
	EventFlag:           {"void", "uint32_t flags", "flags"},
	EventPartition:      {"void", "uint32_t partition", "partition"},
	EventNetworkSend:    {"void", "Buffer& buf", "buf"},
	EventNetworkReceive: {"bool", "Buffer& buf", "buf"},
}

// EventInfo is the public accessor for an event's fixed signature,
// used by codegen when emitting declarations, dispatcher bodies, and
// per-category event-table function pointers.
func EventInfo(e Event) (name, returnType, params, callArgs string) {
	sig := eventSignatures[e]
	return eventNames[e], sig.returnType, sig.params, sig.callArgs
}

// EventEntry is one event's per-object state. Disabled
// forbids Inherits and Implements by construction: DISABLE sets
// Disabled and Manual together and nothing else may set Inherits or
// Implements once Disabled is true.
type EventEntry struct {
	Inherits   bool
	Implements bool
	Manual     bool
	NoInherit  bool
	Disabled   bool
	Source     string
	Header     string
	Null       string
}
