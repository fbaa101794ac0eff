package engine

// DefaultCategory is the category assigned to resource types absent from the
// classification table. The fallback makes Classify total: a state full of
// types we have never seen still produces a complete set of modules.
const DefaultCategory = "misc"

// classificationTable maps resource types to the category their generated
// module belongs to. The table spans the AWS, Google Cloud, Azure and
// Kubernetes provider naming conventions.
var classificationTable = map[string]string{
	// compute
	"aws_instance":                    "compute",
	"aws_launch_template":             "compute",
	"aws_autoscaling_group":           "compute",
	"aws_key_pair":                    "compute",
	"aws_lambda_function":             "compute",
	"google_compute_instance":         "compute",
	"google_compute_instance_group":   "compute",
	"azurerm_virtual_machine":         "compute",
	"azurerm_linux_virtual_machine":   "compute",
	"azurerm_windows_virtual_machine": "compute",

	// networking
	"aws_vpc":                     "networking",
	"aws_subnet":                  "networking",
	"aws_route_table":             "networking",
	"aws_route_table_association": "networking",
	"aws_internet_gateway":        "networking",
	"aws_nat_gateway":             "networking",
	"aws_eip":                     "networking",
	"aws_route53_zone":            "networking",
	"aws_route53_record":          "networking",
	"google_compute_network":      "networking",
	"google_compute_subnetwork":   "networking",
	"google_compute_router":       "networking",
	"azurerm_virtual_network":     "networking",
	"azurerm_subnet":              "networking",
	"azurerm_public_ip":           "networking",

	// security
	"aws_security_group":             "security",
	"aws_security_group_rule":        "security",
	"aws_iam_role":                   "security",
	"aws_iam_role_policy":            "security",
	"aws_iam_policy":                 "security",
	"aws_iam_user":                   "security",
	"aws_iam_instance_profile":       "security",
	"aws_kms_key":                    "security",
	"google_compute_firewall":        "security",
	"google_service_account":         "security",
	"azurerm_network_security_group": "security",
	"azurerm_key_vault":              "security",

	// storage
	"aws_s3_bucket":             "storage",
	"aws_s3_bucket_policy":      "storage",
	"aws_ebs_volume":            "storage",
	"aws_efs_file_system":       "storage",
	"google_storage_bucket":     "storage",
	"azurerm_storage_account":   "storage",
	"azurerm_storage_container": "storage",

	// database
	"aws_db_instance":              "database",
	"aws_db_subnet_group":          "database",
	"aws_rds_cluster":              "database",
	"aws_dynamodb_table":           "database",
	"aws_elasticache_cluster":      "database",
	"google_sql_database_instance": "database",
	"azurerm_postgresql_server":    "database",
	"azurerm_mysql_server":         "database",

	// loadbalancing
	"aws_lb":                         "loadbalancing",
	"aws_alb":                        "loadbalancing",
	"aws_lb_target_group":            "loadbalancing",
	"aws_lb_listener":                "loadbalancing",
	"aws_elb":                        "loadbalancing",
	"google_compute_forwarding_rule": "loadbalancing",
	"google_compute_backend_service": "loadbalancing",
	"azurerm_lb":                     "loadbalancing",

	// cdn
	"aws_cloudfront_distribution":   "cdn",
	"google_compute_backend_bucket": "cdn",
	"azurerm_cdn_profile":           "cdn",
	"azurerm_cdn_endpoint":          "cdn",

	// monitoring
	"aws_cloudwatch_metric_alarm":    "monitoring",
	"aws_cloudwatch_log_group":       "monitoring",
	"aws_sns_topic":                  "monitoring",
	"aws_sns_topic_subscription":     "monitoring",
	"google_monitoring_alert_policy": "monitoring",
	"azurerm_monitor_metric_alert":   "monitoring",

	// kubernetes
	"kubernetes_namespace":       "kubernetes",
	"kubernetes_deployment":      "kubernetes",
	"kubernetes_service":         "kubernetes",
	"kubernetes_config_map":      "kubernetes",
	"kubernetes_secret":          "kubernetes",
	"kubernetes_ingress":         "kubernetes",
	"aws_eks_cluster":            "kubernetes",
	"aws_eks_node_group":         "kubernetes",
	"google_container_cluster":   "kubernetes",
	"azurerm_kubernetes_cluster": "kubernetes",
}

// Classify returns the category for a resource type. Types absent from the
// classification table map to DefaultCategory, so Classify never fails.
func Classify(resourceType string) string {
	if category, ok := classificationTable[resourceType]; ok {
		return category
	}
	return DefaultCategory
}
