package handler

const (
	jsonKeyError   = "error"
	jsonKeyMessage = "message"

	paramID = "id"

	fieldFirstName = "firstname"
	fieldLastName  = "lastname"
	fieldUsername  = "username"
)

const (
	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgInvalidRequestBody      = "invalid request body"
	msgInvalidAccountID        = "invalid account id"
	msgInvalidRecordID         = "invalid record id"
	msgInvalidPermissionLevel  = "invalid permission value: must be 0 (read), 1 (write), or 2 (delete)"
	msgAccountNotFound         = "account not found"
	msgInvalidCredentials      = "invalid credentials"
	msgPasswordProcessFail     = "failed to process password"
	msgCreateAccountFail       = "failed to create account"
	msgLoginFail               = "failed to log in"
	msgGenerateTokenFail       = "failed to generate token"
	msgEmailAlreadyExists      = "account with this email or username already exists"
	msgRecordEmailExists       = "email already exists"
	msgRecordNotFound          = "record not found"
	msgListRecordsFail         = "failed to list records"
	msgCreateRecordFail        = "failed to create record"
	msgUpdateRecordFail        = "failed to update record"
	msgDeleteRecordFail        = "failed to delete record"
	msgUpdatePermissionsFail   = "failed to update permissions"
	msgPermissionsUpdated      = "permissions updated successfully"
	msgRecordDeleted           = "record deleted successfully"
)
