package dto

type CreateBucketRequestDTO struct {
	Name   string `json:"name" binding:"omitempty,min=3,max=63"`
	Region string `json:"region" binding:"omitempty"`
}

type CreateBucketWithFolderRequestDTO struct {
	Name       string `json:"name" binding:"omitempty,min=3,max=63"`
	Region     string `json:"region" binding:"omitempty"`
	FolderName string `json:"folder_name" binding:"required"`
}
