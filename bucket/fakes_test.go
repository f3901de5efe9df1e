package bucket

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// fakeS3 lets each test override only the operations it exercises.
type fakeS3 struct {
	putObject               func(*s3.PutObjectInput) (*s3.PutObjectOutput, error)
	putObjectACL            func(*s3.PutObjectAclInput) (*s3.PutObjectAclOutput, error)
	getObject               func(*s3.GetObjectInput) (*s3.GetObjectOutput, error)
	headObject              func(*s3.HeadObjectInput) (*s3.HeadObjectOutput, error)
	deleteObject            func(*s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error)
	listObjectsV2           func(*s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error)
	createMultipartUpload   func(*s3.CreateMultipartUploadInput) (*s3.CreateMultipartUploadOutput, error)
	uploadPart              func(*s3.UploadPartInput) (*s3.UploadPartOutput, error)
	completeMultipartUpload func(*s3.CompleteMultipartUploadInput) (*s3.CompleteMultipartUploadOutput, error)
	abortMultipartUpload    func(*s3.AbortMultipartUploadInput) (*s3.AbortMultipartUploadOutput, error)
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putObject != nil {
		return f.putObject(in)
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) PutObjectAcl(_ context.Context, in *s3.PutObjectAclInput, _ ...func(*s3.Options)) (*s3.PutObjectAclOutput, error) {
	if f.putObjectACL != nil {
		return f.putObjectACL(in)
	}
	return &s3.PutObjectAclOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getObject != nil {
		return f.getObject(in)
	}
	return &s3.GetObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headObject != nil {
		return f.headObject(in)
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteObject != nil {
		return f.deleteObject(in)
	}
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if f.listObjectsV2 != nil {
		return f.listObjectsV2(in)
	}
	return &s3.ListObjectsV2Output{}, nil
}

func (f *fakeS3) CreateMultipartUpload(_ context.Context, in *s3.CreateMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	if f.createMultipartUpload != nil {
		return f.createMultipartUpload(in)
	}
	return &s3.CreateMultipartUploadOutput{}, nil
}

func (f *fakeS3) UploadPart(_ context.Context, in *s3.UploadPartInput, _ ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	if f.uploadPart != nil {
		return f.uploadPart(in)
	}
	return &s3.UploadPartOutput{}, nil
}

func (f *fakeS3) CompleteMultipartUpload(_ context.Context, in *s3.CompleteMultipartUploadInput, _ ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	if f.completeMultipartUpload != nil {
		return f.completeMultipartUpload(in)
	}
	return &s3.CompleteMultipartUploadOutput{}, nil
}

func (f *fakeS3) AbortMultipartUpload(_ context.Context, in *s3.AbortMultipartUploadInput, _ ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	if f.abortMultipartUpload != nil {
		return f.abortMultipartUpload(in)
	}
	return &s3.AbortMultipartUploadOutput{}, nil
}
