package gsx

// Operation is a remote GSX operation name.
type Operation string

const (
	OpAuthenticate              Operation = "Authenticate"
	OpLogout                    Operation = "Logout"
	OpPartsLookup               Operation = "PartsLookup"
	OpRepairLookup              Operation = "RepairLookup"
	OpRepairStatus              Operation = "RepairStatus"
	OpRepairDetails             Operation = "RepairDetails"
	OpMarkRepairComplete        Operation = "MarkRepairComplete"
	OpCreateCarryInRepair       Operation = "CreateCarryInRepair"
	OpCreateGeneralEscalation   Operation = "CreateGeneralEscalation"
	OpUpdateGeneralEscalation   Operation = "UpdateGeneralEscalation"
	OpCreateStockingOrder       Operation = "CreateStockingOrder"
	OpReturnLabel               Operation = "ReturnLabel"
	OpPartsPendingReturn        Operation = "PartsPendingReturn"
	OpFetchRepairDiagnostic     Operation = "FetchRepairDiagnostic"
	OpFetchIOSDiagnostic        Operation = "FetchIOSDiagnostic"
	OpFetchProductModel         Operation = "FetchProductModel"
	OpWarrantyStatus            Operation = "WarrantyStatus"
	OpFetchIOSActivationDetails Operation = "FetchIOSActivationDetails"
	OpKGBSerialNumberUpdate     Operation = "KGBSerialNumberUpdate"
	OpCompTIACodes              Operation = "CompTIACodes"
)

// Binding ties an operation to its envelope type and the response
// field holding its result. An empty ResultField returns the whole response.
type Binding struct {
	EnvelopeType string
	ResultField  string
}

var Operations = map[Operation]Binding{
	OpAuthenticate:              {EnvelopeType: "authenticateRequestType", ResultField: "userSessionId"},
	OpLogout:                    {EnvelopeType: "logoutRequestType"},
	OpPartsLookup:               {EnvelopeType: "partsLookupRequestType", ResultField: "parts"},
	OpRepairLookup:              {EnvelopeType: "repairLookupRequestType", ResultField: "lookupResponseData"},
	OpRepairStatus:              {EnvelopeType: "repairStatusRequestType", ResultField: "repairStatus"},
	OpRepairDetails:             {EnvelopeType: "repairDetailsRequestType", ResultField: "lookupResponseData"},
	OpMarkRepairComplete:        {EnvelopeType: "markRepairCompleteRequestType", ResultField: "repairConfirmationNumbers"},
	OpCreateCarryInRepair:       {EnvelopeType: "carryInRequestType", ResultField: "repairConfirmation"},
	OpCreateGeneralEscalation:   {EnvelopeType: "createGenEscRequestType", ResultField: "escalationConfirmation"},
	OpUpdateGeneralEscalation:   {EnvelopeType: "updateGeneralEscRequestType", ResultField: "escalationConfirmation"},
	OpCreateStockingOrder:       {EnvelopeType: "createStockingOrderRequestType", ResultField: "orderConfirmation"},
	OpReturnLabel:               {EnvelopeType: "returnLabelRequestType", ResultField: "returnLabelData"},
	OpPartsPendingReturn:        {EnvelopeType: "partsPendingReturnRequestType", ResultField: "partsPendingResponse"},
	OpFetchRepairDiagnostic:     {EnvelopeType: "fetchRepairDiagnosticRequestType"},
	OpFetchIOSDiagnostic:        {EnvelopeType: "fetchIOSDiagnosticRequestType"},
	OpFetchProductModel:         {EnvelopeType: "fetchProductModelRequestType", ResultField: "productModelResponse"},
	OpWarrantyStatus:            {EnvelopeType: "warrantyStatusRequestType", ResultField: "warrantyDetailInfo"},
	OpFetchIOSActivationDetails: {EnvelopeType: "fetchIOSActivationDetailsRequestType", ResultField: "activationDetailsInfo"},
	OpKGBSerialNumberUpdate:     {EnvelopeType: "updateKGBSerialNumberRequestType"},
	OpCompTIACodes:              {EnvelopeType: "comptiaCodeLookupRequestType", ResultField: "comptiaInfo"},
}

func (op Operation) Binding() (Binding, bool) {
	b, ok := Operations[op]
	return b, ok
}
