package registration

import "github.com/kmlee/safety-edu-booking/pkg/txmanager"

// DBExecutor is the database surface the repository needs. The concrete
// executor for each call is resolved from the context, so queries join
// an ambient transaction when one is open.
type DBExecutor = txmanager.DBExecutor
