package foodmart

// Table is one table of the Foodmart schema. QuotedColumns lists the columns
// holding text, which are written as quoted literals.
type Table struct {
	Name          string
	QuotedColumns []string
}

var schema = []Table{
	{"account", []string{"account_description", "account_type", "account_rollup", "Custom_Members"}},
	{"agg_c_10_sales_fact_1997", []string{"quarter"}},
	{"agg_c_14_sales_fact_1997", []string{"quarter"}},
	{"agg_c_special_sales_fact_1997", []string{"time_quarter"}},
	{"agg_g_ms_pcat_sales_fact_1997", []string{
		"gender", "marital_status", "product_family", "product_department", "product_category", "quarter",
	}},
	{"agg_l_03_sales_fact_1997", nil},
	{"agg_l_04_sales_fact_1997", nil},
	{"agg_l_05_sales_fact_1997", nil},
	{"agg_lc_06_sales_fact_1997", []string{"city", "state_province", "country"}},
	{"agg_lc_100_sales_fact_1997", []string{"quarter"}},
	{"agg_ll_01_sales_fact_1997", nil},
	{"agg_pl_01_sales_fact_1997", nil},
	{"category", []string{"category_id", "category_parent", "category_description", "category_rollup"}},
	{"currency", []string{"date", "currency"}},
	{"customer", []string{
		"lname", "fname", "mi", "address1", "address2", "address3", "address4", "city",
		"state_province", "postal_code", "country", "phone1", "phone2", "birthdate",
		"marital_status", "yearly_income", "gender", "education", "date_accnt_opened",
		"member_card", "occupation", "houseowner", "fullname",
	}},
	{"days", []string{"week_day"}},
	{"department", []string{"department_description"}},
	{"employee", []string{
		"full_name", "first_name", "last_name", "position_title", "birth_date", "hire_date",
		"end_date", "education_level", "marital_status", "gender", "management_role",
	}},
	{"employee_closure", nil},
	{"expense_fact", []string{"exp_date", "category_id"}},
	{"inventory_fact_1997", nil},
	{"inventory_fact_1998", nil},
	{"position", []string{"position_title", "pay_type", "management_role"}},
	{"product", []string{"brand_name", "product_name"}},
	{"product_class", []string{"product_subcategory", "product_category", "product_department", "product_family"}},
	{"promotion", []string{"promotion_name", "media_type", "start_date", "end_date"}},
	{"region", []string{
		"sales_city", "sales_state_province", "sales_district", "sales_region", "sales_country",
	}},
	{"reserve_employee", []string{
		"full_name", "first_name", "last_name", "position_title", "birth_date", "hire_date",
		"end_date", "education_level", "marital_status", "gender",
	}},
	{"salary", []string{"pay_date"}},
	{"sales_fact_1997", nil},
	{"sales_fact_1998", nil},
	{"sales_fact_dec_1998", nil},
	{"store", []string{
		"store_type", "store_name", "store_street_address", "store_city", "store_state",
		"store_postal_code", "store_country", "store_manager", "store_phone", "store_fax",
		"first_opened_date", "last_remodel_date", "florist",
	}},
	{"store_ragged", []string{
		"store_type", "store_name", "store_street_address", "store_city", "store_state",
		"store_postal_code", "store_country", "store_manager", "store_phone", "store_fax",
		"first_opened_date", "last_remodel_date", "florist",
	}},
	{"time_by_day", []string{
		"the_date", "the_day", "the_month", "the_year", "day_of_month", "week_of_year",
		"month_of_year", "quarter", "fiscal_period",
	}},
	{"warehouse", []string{
		"warehouse_name", "wa_address1", "wa_address2", "wa_address3", "wa_address4",
		"warehouse_city", "warehouse_state_province", "warehouse_postal_code", "warehouse_country",
		"warehouse_owner_name", "warehouse_phone", "warehouse_fax",
	}},
	{"warehouse_class", []string{"description"}},
}
