// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BoardsColumns holds the columns for the "boards" table.
	BoardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "pinned", Type: field.TypeBool, Default: false},
	}
	// BoardsTable holds the schema information for the "boards" table.
	BoardsTable = &schema.Table{
		Name:       "boards",
		Columns:    BoardsColumns,
		PrimaryKey: []*schema.Column{BoardsColumns[0]},
	}
	// DiagnosesColumns holds the columns for the "diagnoses" table.
	DiagnosesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"survey", "image"}},
		{Name: "skin_type", Type: field.TypeString, Size: 32},
		{Name: "image_key", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "scores", Type: field.TypeJSON, Nullable: true},
		{Name: "category_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "total_score", Type: field.TypeInt, Nullable: true},
		{Name: "video_data", Type: field.TypeJSON, Nullable: true},
		{Name: "product_data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_public", Type: field.TypeBool, Default: true},
		{Name: "member_id", Type: field.TypeUUID, Nullable: true},
	}
	// DiagnosesTable holds the schema information for the "diagnoses" table.
	DiagnosesTable = &schema.Table{
		Name:       "diagnoses",
		Columns:    DiagnosesColumns,
		PrimaryKey: []*schema.Column{DiagnosesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "diagnoses_members_diagnoses",
				Columns:    []*schema.Column{DiagnosesColumns[14]},
				RefColumns: []*schema.Column{MembersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "diagnosis_member_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DiagnosesColumns[14], DiagnosesColumns[1]},
			},
			{
				Name:    "diagnosis_is_public_skin_type",
				Unique:  false,
				Columns: []*schema.Column{DiagnosesColumns[13], DiagnosesColumns[5]},
			},
		},
	}
	// MembersColumns holds the columns for the "members" table.
	MembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"kakao", "google"}},
		{Name: "provider_id", Type: field.TypeString, Size: 255},
		{Name: "profile_image_url", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "skin_type", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// MembersTable holds the schema information for the "members" table.
	MembersTable = &schema.Table{
		Name:       "members",
		Columns:    MembersColumns,
		PrimaryKey: []*schema.Column{MembersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BoardsTable,
		DiagnosesTable,
		MembersTable,
	}
)

func init() {
	DiagnosesTable.ForeignKeys[0].RefTable = MembersTable
}
