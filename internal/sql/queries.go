package sql

import (
	"embed"
)

//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_batch.sql
var RegisterBatch string

//go:embed queries/lookup_batch.sql
var LookupBatch string

//go:embed queries/update_batch_status.sql
var UpdateBatchStatus string

//go:embed queries/publish_batch.sql
var PublishBatch string

//go:embed queries/delete_published_batch.sql
var DeletePublishedBatch string

//go:embed queries/finalize_batch.sql
var FinalizeBatch string

//go:embed queries/delete_stage_batch.sql
var DeleteStageBatch string

//go:embed queries/analyze.sql
var Analyze string
