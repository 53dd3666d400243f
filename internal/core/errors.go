package core

import "errors"

// unexported variables.
var (
	errAliasGroupChild      = errors.New("alias group children must be named and share the group's value type")
	errAliasGroupChildRange = errors.New("repeatable alias group children cannot have a value range; set it on the group")
	errAnonymousModeChild   = errors.New("anonymous mode cannot have a child mode")
	errAnonymousModeNested  = errors.New("anonymous modes can only exist under the root")
	errAnonymousModeRouter  = errors.New("anonymous modes must have routing")
	errCountRange           = errors.New("minimum count must not exceed maximum count")
	errCountingFlagCount    = errors.New("counting flag cannot have a fixed count")
	errDefaultType          = errors.New("default value does not match the node's value type")
	errDuplicateAnonymous   = errors.New("root can only have one anonymous mode")
	errDuplicateName        = errors.New("name used by more than one sibling")
	errForwardingName       = errors.New("forwarding arg can only have a none name")
	errLeafRouterPlacement  = errors.New("only top-level leaves can have a router")
	errModeChildModes       = errors.New("mode must have a router or all its children are modes")
	errModeNames            = errors.New("mode must not have a long or short name")
	errModeNoChildren       = errors.New("mode must have at least one child node")
	errMultiArgCount        = errors.New("multi arg requires a minimum of one value token")
	errNeedsName            = errors.New("node must have a long and/or short name")
	errNoneNameForbidden    = errors.New("node must not have a none name")
	errNoRouterAllowed      = errors.New("node does not support routing")
	errNoParserAllowed      = errors.New("node cannot have a custom parser")
	errOneOfChild           = errors.New("one of children must produce a value")
	errOneOfDefault         = errors.New("one of must be required or have a default value")
	errParserType           = errors.New("custom parser does not match the node's value type")
	errPositionalName       = errors.New("positional arg must have a none name and no long or short name")
	errRangeType            = errors.New("value range does not match the node's value type")
	errRootNoChildren       = errors.New("root must have at least one child")
	errSeparatorPlacement   = errors.New("value separator requires an arg with a fixed count of one")
	errSeparatorWhitespace  = errors.New("value separator must not be whitespace")
	errTargetInvoked        = errors.New("parse target invoked twice")
	errTopLevelRouter       = errors.New("top-level nodes other than modes must have a router")
	errUnsupportedValueType = errors.New("unsupported value type")
	errValueIndex           = errors.New("value index out of range")
	errValueType            = errors.New("value has a different type")
)
