package v1alpha1

func StringToJobStatus(s string) JobStatus {
	switch s {
	case string(JobStatusPending):
		return JobStatusPending
	case string(JobStatusQueued):
		return JobStatusQueued
	case string(JobStatusRunning):
		return JobStatusRunning
	case string(JobStatusCompleted):
		return JobStatusCompleted
	case string(JobStatusFailed):
		return JobStatusFailed
	case string(JobStatusCanceled):
		return JobStatusCanceled
	default:
		return JobStatusPending
	}
}

func StringToErrorCategory(s string) ErrorCategory {
	switch s {
	case string(ErrorCategorySystem):
		return ErrorCategorySystem
	case string(ErrorCategoryData):
		return ErrorCategoryData
	case string(ErrorCategoryAlgorithm):
		return ErrorCategoryAlgorithm
	default:
		return ErrorCategorySystem
	}
}

func StringToClassification(s string) Classification {
	switch s {
	case string(ClassificationError):
		return ClassificationError
	case string(ClassificationWarning):
		return ClassificationWarning
	case string(ClassificationSuccess):
		return ClassificationSuccess
	case string(ClassificationInactive):
		return ClassificationInactive
	default:
		return ClassificationInactive
	}
}
