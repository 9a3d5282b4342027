package usecase

const (
	CreateDialogTitle = "Movie Add Status"
	ReadDialogTitle   = "Movie Action Status"

	MsgAdded        = "Movie added successfully"
	MsgAddFailed    = "Failed to add movie"
	MsgUpdated      = "Movie updated successfully"
	MsgUpdateFailed = "Failed to update movie"
	MsgDeleted      = "Movie deleted successfully"
	MsgDeleteFailed = "Failed to delete movie"
)
