package models

// DestinationType is the discriminant of a transfer destination
type DestinationType string

const (
	DestinationTypeHTTPData     DestinationType = "HttpData"
	DestinationTypeAmazonS3     DestinationType = "AmazonS3"
	DestinationTypeAzureStorage DestinationType = "AzureStorage"
	DestinationTypeHTTPProxy    DestinationType = "HttpProxy"
)

// Destination describes where transferred data should land. The set of
// implementations is closed to this package.
type Destination interface {
	Type() DestinationType
	isDestination()
}

// HTTPAuthType selects how the HttpData authentication header is resolved
type HTTPAuthType string

const (
	HTTPAuthTypeVault HTTPAuthType = "vault"
	HTTPAuthTypeValue HTTPAuthType = "value"
)

// HTTPAuthentication describes the auth header sent to an HttpData destination
type HTTPAuthentication struct {
	Type            HTTPAuthType
	HeaderName      string
	VaultSecretName string // used when Type is vault
	HeaderValue     string // used when Type is value
}

// HTTPHeader is an additional header sent to an HttpData destination
type HTTPHeader struct {
	Name  string
	Value string
}

// HTTPPayload is an optional body sent alongside the data
type HTTPPayload struct {
	ContentType string
	Body        string
}

// HTTPDataDestination pushes data to an HTTP endpoint
type HTTPDataDestination struct {
	Method         string
	BaseURL        string
	Authentication *HTTPAuthentication
	Headers        []HTTPHeader
	Payload        *HTTPPayload
}

// AmazonS3Destination pushes data to an S3 bucket
type AmazonS3Destination struct {
	Region          string
	BucketName      string
	KeyName         string
	AccessKeyID     string
	SecretAccessKey string
}

// AzureStorageDestination pushes data to an Azure blob container
type AzureStorageDestination struct {
	Account   string
	Container string
	BlobName  string
	SASToken  string
}

// HTTPProxyDestination is a pull transfer: the consumer fetches the data itself
type HTTPProxyDestination struct{}

func (HTTPDataDestination) Type() DestinationType     { return DestinationTypeHTTPData }
func (AmazonS3Destination) Type() DestinationType     { return DestinationTypeAmazonS3 }
func (AzureStorageDestination) Type() DestinationType { return DestinationTypeAzureStorage }
func (HTTPProxyDestination) Type() DestinationType    { return DestinationTypeHTTPProxy }

func (HTTPDataDestination) isDestination()     {}
func (AmazonS3Destination) isDestination()     {}
func (AzureStorageDestination) isDestination() {}
func (HTTPProxyDestination) isDestination()    {}

// Unwrap returns the value form of d. Pointer variants are dereferenced and
// nil pointers become a nil Destination.
func Unwrap(d Destination) Destination {
	switch dest := d.(type) {
	case *HTTPDataDestination:
		if dest == nil {
			return nil
		}
		return *dest
	case *AmazonS3Destination:
		if dest == nil {
			return nil
		}
		return *dest
	case *AzureStorageDestination:
		if dest == nil {
			return nil
		}
		return *dest
	case *HTTPProxyDestination:
		if dest == nil {
			return nil
		}
		return *dest
	}
	return d
}

// IsPull reports whether the destination is retrieved by the consumer
func IsPull(d Destination) bool {
	d = Unwrap(d)
	return d != nil && d.Type() == DestinationTypeHTTPProxy
}

// Transfer request constants
const (
	ProtocolDataspaceHTTP  = "dataspace-protocol-http"
	ContentTypeOctetStream = "application/octet-stream"
)

// PrivateProperties are connector-side properties not shared with the provider
type PrivateProperties struct {
	ReceiverHTTPEndpoint string
}

// TransferType describes the shape of the data flow
type TransferType struct {
	ContentType string
	IsFinite    bool
}

// TransferRequest is the payload sent to initiate a transfer
type TransferRequest struct {
	AssetID           string
	ContractID        string
	Destination       Destination
	ConnectorAddress  string
	ConnectorID       string
	ManagedResources  bool
	Protocol          string
	PrivateProperties PrivateProperties
	TransferType      TransferType
}
