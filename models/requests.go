package models

// SavePolicy is the precondition attached to a batched write.
type SavePolicy string

const (
	// SavePolicyIfServerRecordUnchanged accepts a save only when the stored
	// change tag matches the one the client sent. A save without a change
	// tag is a create.
	SavePolicyIfServerRecordUnchanged SavePolicy = "if_server_record_unchanged"
	// SavePolicyAllKeys overwrites the stored record unconditionally.
	SavePolicyAllKeys SavePolicy = "all_keys"
)

// ModifyRequest is one batched save/delete operation against a zone.
type ModifyRequest struct {
	Zone       string         `json:"zone"`
	Save       []RemoteRecord `json:"save,omitempty"`
	Delete     []string       `json:"delete,omitempty"`
	SavePolicy SavePolicy     `json:"save_policy"`
}

// Size returns the number of items in the batch.
func (r ModifyRequest) Size() int {
	return len(r.Save) + len(r.Delete)
}

// ModifyResponse lists the items the server accepted. On a partial failure
// it is returned together with the error and still lists every accepted item.
type ModifyResponse struct {
	Saved   []RemoteRecord `json:"saved,omitempty"`
	Deleted []string       `json:"deleted,omitempty"`
	Error   *RemoteError   `json:"error,omitempty"`
}

// ChangesRequest asks for every change in Zone after Token. A nil token
// requests the full zone contents.
type ChangesRequest struct {
	Zone  string `json:"zone"`
	Token []byte `json:"token,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// DeletedRecord identifies a record removed from the zone.
type DeletedRecord struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ChangesResponse is one page of zone changes. Token marks how far this page
// reaches; MoreComing is true when another page follows.
type ChangesResponse struct {
	Changed    []RemoteRecord  `json:"changed,omitempty"`
	Deleted    []DeletedRecord `json:"deleted,omitempty"`
	Token      []byte          `json:"token"`
	MoreComing bool            `json:"more_coming"`
}
