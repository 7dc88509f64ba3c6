package spec

// Operation holds one HTTP method's declared behaviour on a path item:
// descriptive metadata, content negotiation overrides, operation-level
// parameters, and responses.
type Operation struct {
	method      string
	tags        []string
	summary     string
	description string
	id          string
	consumes    []string
	produces    []string
	parameters  *ParameterSet
	responses   map[ResponseCode]Response
}

func newOperation(method string) *Operation {
	return &Operation{
		method:     method,
		parameters: NewParameterSet(),
		responses:  make(map[ResponseCode]Response),
	}
}

// OperationOption customises DeclareOperation.
type OperationOption func(*Operation)

// WithTags attaches grouping tags.
func WithTags(tags ...string) OperationOption {
	return func(op *Operation) {
		op.tags = append([]string(nil), tags...)
	}
}

// WithSummary sets the short summary line.
func WithSummary(summary string) OperationOption {
	return func(op *Operation) {
		op.summary = summary
	}
}

// WithDescription sets the long-form description.
func WithDescription(description string) OperationOption {
	return func(op *Operation) {
		op.description = description
	}
}

// WithOperationID sets the unique operation identifier.
func WithOperationID(id string) OperationOption {
	return func(op *Operation) {
		op.id = id
	}
}

// WithConsumes overrides the document-level request media types.
func WithConsumes(mediaTypes ...string) OperationOption {
	return func(op *Operation) {
		op.consumes = append([]string(nil), mediaTypes...)
	}
}

// WithProduces overrides the document-level response media types.
func WithProduces(mediaTypes ...string) OperationOption {
	return func(op *Operation) {
		op.produces = append([]string(nil), mediaTypes...)
	}
}

// Method returns the lower-cased HTTP method.
func (o *Operation) Method() string {
	return o.method
}

// Tags returns a copy of the grouping tags.
func (o *Operation) Tags() []string {
	return append([]string(nil), o.tags...)
}

// Summary returns the short summary line.
func (o *Operation) Summary() string {
	return o.summary
}

// Description returns the long-form description.
func (o *Operation) Description() string {
	return o.description
}

// ID returns the operation identifier.
func (o *Operation) ID() string {
	return o.id
}

// Consumes returns a copy of the operation-level request media types.
func (o *Operation) Consumes() []string {
	if len(o.consumes) == 0 {
		return nil
	}
	return append([]string(nil), o.consumes...)
}

// Produces returns a copy of the operation-level response media types.
func (o *Operation) Produces() []string {
	if len(o.produces) == 0 {
		return nil
	}
	return append([]string(nil), o.produces...)
}

// Parameters returns the operation-level parameter set. It layers over the
// owning path item's set during resolution.
func (o *Operation) Parameters() *ParameterSet {
	return o.parameters
}

// DeclareParameter validates raw and stores it at operation level.
func (o *Operation) DeclareParameter(raw ParameterSpec) (Parameter, error) {
	return o.parameters.Declare(raw)
}

// Responses returns a copy of the declared responses.
func (o *Operation) Responses() map[ResponseCode]Response {
	out := make(map[ResponseCode]Response, len(o.responses))
	for code, resp := range o.responses {
		out[code] = resp
	}
	return out
}

// Response returns the response declared for code, if any. code follows the
// DeclareResponse contract: an int or the Default sentinel.
func (o *Operation) Response(code any) (Response, bool) {
	key, err := parseResponseCode(code)
	if err != nil {
		return Response{}, false
	}
	resp, ok := o.responses[key]
	return resp, ok
}
