package reefdx

// HelloFeature represents a feature code negotiated during the HELLO
// operation at the start of a connection.
type HelloFeature uint16

const (
	// HelloFeatureDatatype indicates support for datatype fields.
	HelloFeatureDatatype = HelloFeature(0x01)

	// HelloFeatureSeqNo indicates support for mutation tokens.
	HelloFeatureSeqNo = HelloFeature(0x04)

	// HelloFeatureXattr indicates support for document xattrs.
	HelloFeatureXattr = HelloFeature(0x06)

	// HelloFeatureXerror indicates support for extended errors.
	HelloFeatureXerror = HelloFeature(0x07)

	// HelloFeatureSelectBucket indicates support for the SelectBucket operation.
	HelloFeatureSelectBucket = HelloFeature(0x08)

	// HelloFeatureSnappy indicates support for snappy compressed documents.
	HelloFeatureSnappy = HelloFeature(0x0a)

	// HelloFeatureJSON indicates support for the JSON datatype flag.
	HelloFeatureJSON = HelloFeature(0x0b)

	// HelloFeatureUnorderedExec indicates support for unordered execution, which
	// permits responses to arrive out of order relative to send order.
	HelloFeatureUnorderedExec = HelloFeature(0x0e)

	// HelloFeatureSyncReplication indicates support for wire-level durability
	// requirements carried in framing extras.
	HelloFeatureSyncReplication = HelloFeature(0x11)

	// HelloFeatureCollections indicates support for collections, enabling
	// collection-id prefixed keys.
	HelloFeatureCollections = HelloFeature(0x12)

	// HelloFeatureAltRequests indicates support for framing-extras requests.
	HelloFeatureAltRequests = HelloFeature(0x10)
)
