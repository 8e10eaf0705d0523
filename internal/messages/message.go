package messages

const (
	prefixKey        = "clargs"
	MessagePrefixKey = prefixKey + ".msg"
)

// Diagnostics printed before the help text when parsing fails
const (
	MsgTooFewArgumentsKey         = MessagePrefixKey + ".too_few_arguments"
	MsgTooManyArgumentsKey        = MessagePrefixKey + ".too_many_arguments"
	MsgMissingArgumentValueKey    = MessagePrefixKey + ".missing_argument_value"
	MsgDuplicateArgumentKey       = MessagePrefixKey + ".duplicate_argument"
	MsgRequiredArgumentMissingKey = MessagePrefixKey + ".required_argument_missing"
)

// Help labels
const (
	MsgVersionKey     = MessagePrefixKey + ".version"
	MsgAuthorKey      = MessagePrefixKey + ".author"
	MsgUsageKey       = MessagePrefixKey + ".usage"
	MsgOptionsKey     = MessagePrefixKey + ".options"
	MsgOptionsTailKey = MessagePrefixKey + ".options_tail"
	MsgValueKey       = MessagePrefixKey + ".value"
	MsgRequiredKey    = MessagePrefixKey + ".required"
	MsgDefaultsToKey  = MessagePrefixKey + ".defaults_to"
	MsgEnvKey         = MessagePrefixKey + ".env"
)
